// Package service provides domain services for UserHub.
//
// UserService owns the account lifecycle, TokenService owns issuing,
// extending, and verifying authentication tokens. Both persist through
// the RecordStore interface and translate storage errors into domain
// errors; HTTP handlers above them never see storage sentinels.
package service
