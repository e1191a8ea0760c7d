// Package api provides the local REST API used by the hostsctl desktop frontend.
//
// Every endpoint maps onto one store, backup, editor or self-check operation.
// The server only answers loopback clients.
//
// # Endpoints
//
//	GET    /api/v1/hosts                  list entries
//	POST   /api/v1/hosts                  add one mapping
//	PUT    /api/v1/hosts                  replace all entries
//	GET    /api/v1/backups                list backups
//	POST   /api/v1/backups                create a backup
//	POST   /api/v1/backups/{name}/restore restore a backup
//	POST   /api/v1/editor                 open the hosts file in an editor
//	GET    /api/v1/check                  self-check report
//	GET    /api/v1/health                 liveness
//
// # Response Format
//
// All successful responses wrap data in a "data" field:
//
//	{
//	  "data": { /* response payload */ }
//	}
//
// Error responses use the following format:
//
//	{
//	  "error": {
//	    "code": "duplicate_mapping",
//	    "message": "Human-readable error message"
//	  }
//	}
package api
