// Package cases is the client for the Cityworks PLL "Case" resource group.
//
// Each method builds the required part of the request from its typed
// parameters, merges the optional fields on top, dispatches the payload to a
// fixed endpoint through the shared Runner and returns the decoded Value of the
// response envelope. Required identifiers always win over optional fields.
//
// Errors from the Runner are returned as they are. The only local check is the
// projection of Move.
package cases
