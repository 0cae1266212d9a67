package model

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrStorageUnavailable = errors.New("no database is open")
	ErrSchemaMismatch     = errors.New("database file has an unexpected schema")
	ErrImportParse        = errors.New("import document is not valid")
)
