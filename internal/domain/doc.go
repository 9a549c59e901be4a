// Package domain defines the requests and contracts shared by the CLI,
// services and stores. It contains plain types and interfaces only; the key
// and signature structures themselves live in internal/minisign.
package domain
