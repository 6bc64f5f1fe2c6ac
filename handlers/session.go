package handlers

import (
	"sync"

	"github.com/dssvels/invoicer/config"
	"github.com/dssvels/invoicer/invoice"
)

// Store is the shared configuration store used by all handlers.
var Store *config.Store

// Emitter runs the emission workflow for the browser front end.
var Emitter *invoice.Emitter

// The browser form is single-user by design: one ledger in progress at a
// time. The mutex only serializes the concurrent requests Go's HTTP server
// allows, it does not make the session multi-user.
var session struct {
	mu     sync.Mutex
	ledger invoice.Ledger
}
