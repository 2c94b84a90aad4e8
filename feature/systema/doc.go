// Package systema ingests order exports from System A.
//
// System A emits a JSON array of objects with the fields OrderID, Customer,
// OrderDate, TotalAmount and Status. Field names are matched case-insensitively.
// Dates lean towards ISO 8601 but are parsed generically; status values are short
// tokens (PEND, PROC, SHIP, COMP, CANC) matched case-insensitively.
package systema
