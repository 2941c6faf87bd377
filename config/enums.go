package config

// Specification of requested page size for produced documents.
// ENUM(asis, a4, letter)
type PaperSize int

// Specification of requested page margins handling for produced documents.
// ENUM(asis, standard)
type MarginsMode int
