// Package dev provides the development server and live reload.
//
// This package implements:
//   - Page rendering on request, with query parameters overriding initial
//     cell and list values
//   - Polling file watching for page sources and the project config
//   - WebSocket-based browser reload
//   - Error pages and error frames for pages that fail to load
//
// # Architecture
//
//   - Watcher: polls the pages directory and config file
//   - build.Pages: caches compiled page programs
//   - Server: chi router serving pages, programs and metrics
//   - ReloadServer: notifies browsers of changes via WebSocket
//
// # Usage
//
//	srv := dev.NewServer(dev.ServerOptions{Config: cfg})
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := srv.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Routes
//
//	GET /                     index of pages
//	GET /{page}               rendered page (?cell=value overrides)
//	GET /_ftd/program/{page}  compiled program
//	GET /_ftd/reload          reload WebSocket
//	GET /metrics              Prometheus metrics
//
// # Reload Protocol
//
// The browser connects to /_ftd/reload. Messages are binary frames of the
// protocol package:
//
//	Hello  payload: program format version
//	Reload payload: page name, empty for every page
//	Error  payload: encoded ErrorMessage
//	Ping   keepalive
package dev
