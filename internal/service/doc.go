// Package service contains the application's orchestration layer. It
// sits between the transport and the persistence interfaces, applying
// authorization and keeping the result cache coherent with the store.
package service
