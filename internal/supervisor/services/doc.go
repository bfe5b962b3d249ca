// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

/*
Package services adapts Foodiug components to suture's Serve(ctx) model.

HTTPServerService turns ListenAndServe into a supervised service with a
bounded graceful shutdown.

StoreMonitorService pings the document store on a fixed interval,
publishes the foodiug_store_up gauge and logs up/down transitions.

Every service implements fmt.Stringer so supervisor events carry its name.
*/
package services
