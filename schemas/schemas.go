package schemas

import "embed"

// SchemasFS содержит JSON-схемы документов сервиса
//
//go:embed documents
var SchemasFS embed.FS
