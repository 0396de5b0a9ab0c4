/*
Package clients provides a client library for the storage URL resolver API.

ResolverClient implements interfaces.ConfigResolver over HTTP, so code written
against the interface can resolve URLs either in process (storage.ConfigResolver)
or through a running resolver service.

MockConfigResolver is a testify mock of the same interface for tests.
*/
package clients
