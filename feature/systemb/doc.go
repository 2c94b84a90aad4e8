// Package systemb ingests order exports from System B.
//
// System B emits CSV with a header row naming the columns order_num, client_name,
// date_placed, total and order_status. Dates are US formatted (MM/DD/YYYY) and
// statuses are integers 1-5.
//
// Columns are resolved by header name, so reordering them in the file is harmless.
// Short rows and empty fields resolve to zero values. Only syntactically broken
// CSV or a non-empty total/status that cannot be converted makes the export malformed.
package systemb
