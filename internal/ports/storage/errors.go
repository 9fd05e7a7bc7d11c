package storage

import "errors"

// ErrNotFound lo devuelven todos los adapters de storage (memory/postgres)
// cuando no existe la fila pedida. Los services lo traducen a apperr.NotFound.
var ErrNotFound = errors.New("not found")

// ErrConflict indica una violación de unicidad (p.ej. email duplicado).
var ErrConflict = errors.New("conflict")
