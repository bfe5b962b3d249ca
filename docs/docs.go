// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

// Package docs registers the Swagger 2.0 document served at /swagger/doc.json.
//
// The layout follows swag init output so the file can be regenerated from the
// handler annotations with:
//
//	swag init -g cmd/server/doc.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "GitHub Repository",
            "url": "https://github.com/tomtom215/foodiug/issues"
        },
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/auth/signup": {
            "post": {
                "description": "Registers a user and returns a session token. Accepts JSON or form bodies.",
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Create an account",
                "parameters": [
                    {"description": "Account details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "400": {"description": "Invalid body or email already used", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.Envelope"}}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "description": "Verifies credentials and returns a session token.",
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "400": {"description": "Missing email or password", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.Envelope"}}
                }
            }
        },
        "/api/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns the authenticated user without the password hash.",
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Own profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "401": {"description": "Missing or invalid token", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "404": {"description": "User no longer exists", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.Envelope"}}
                }
            }
        },
        "/api/restaurants": {
            "get": {
                "description": "Each record carries a \"ville\" field naming its city. Cities are listed in their fixed order.",
                "produces": ["application/json"],
                "tags": ["restaurants"],
                "summary": "Every restaurant of every city",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.Envelope"}}
                }
            }
        },
        "/api/restaurants/villes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["restaurants"],
                "summary": "Supported cities",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Envelope"}}
                }
            }
        },
        "/api/restaurants/{ville}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["restaurants"],
                "summary": "One city's restaurants",
                "parameters": [
                    {"enum": ["Rabat", "Tanger"], "type": "string", "description": "City", "name": "ville", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "404": {"description": "City not available", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.Envelope"}}
                }
            }
        },
        "/api/restaurants/{ville}/search": {
            "get": {
                "description": "Repeated parameters are combined: any of the values may match. rating keeps the smallest value.",
                "produces": ["application/json"],
                "tags": ["restaurants"],
                "summary": "Filtered search in one city",
                "parameters": [
                    {"enum": ["Rabat", "Tanger"], "type": "string", "description": "City", "name": "ville", "in": "path", "required": true},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Meal type", "name": "type", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Cuisine category", "name": "category", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Ambiance", "name": "ambiance", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Price level, e.g. $$", "name": "priceLevel", "in": "query"},
                    {"type": "array", "items": {"type": "number"}, "collectionFormat": "multi", "description": "Minimum rating", "name": "rating", "in": "query"},
                    {"type": "string", "description": "true or Oui", "name": "halal", "in": "query"},
                    {"type": "string", "description": "true", "name": "vegetarien", "in": "query"},
                    {"type": "string", "description": "true", "name": "enfant", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "404": {"description": "City not available", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.Envelope"}}
                }
            }
        },
        "/api/restaurants/{ville}/recommendations": {
            "get": {
                "description": "Up to four restaurants rated 4 or more, drawn at random on every call.",
                "produces": ["application/json"],
                "tags": ["restaurants"],
                "summary": "Recommendations in one city",
                "parameters": [
                    {"enum": ["Rabat", "Tanger"], "type": "string", "description": "City", "name": "ville", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "404": {"description": "City not available", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.Envelope"}}
                }
            }
        },
        "/api/restaurants/{ville}/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["restaurants"],
                "summary": "One restaurant",
                "parameters": [
                    {"enum": ["Rabat", "Tanger"], "type": "string", "description": "City", "name": "ville", "in": "path", "required": true},
                    {"type": "string", "description": "Restaurant id (24 hex characters)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "404": {"description": "City not available or restaurant not found", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.Envelope"}}
                }
            }
        },
        "/api/test": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness message",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Envelope"}}
                }
            }
        },
        "/api/health": {
            "get": {
                "description": "Pings the backing store. Returns 503 when it does not answer within two seconds.",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Store health",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/api.Envelope"}}
                }
            }
        }
    },
    "definitions": {
        "api.Envelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "error": {"type": "string"},
                "ville": {"type": "string"},
                "count": {"type": "integer"},
                "filters": {"type": "object"},
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/models.UserSummary"},
                "data": {},
                "timestamp": {"type": "string", "format": "date-time"}
            }
        },
        "api.HealthStatus": {
            "type": "object",
            "properties": {
                "store": {"type": "string", "enum": ["up", "down"]},
                "uptime": {"type": "string"}
            }
        },
        "api.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "api.SignupRequest": {
            "type": "object",
            "required": ["email", "nom", "password"],
            "properties": {
                "email": {"type": "string"},
                "nom": {"type": "string"},
                "password": {"type": "string", "minLength": 6, "maxLength": 72}
            }
        },
        "models.UserSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "nom": {"type": "string"},
                "email": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Session token. Send \"Bearer <token>\" in the Authorization header or a token cookie.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Foodiug API",
	Description:      "Restaurant directory for Rabat and Tanger: city listings, filtered search, recommendations and accounts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
