// Package pipeline runs a single conversion: load the source map, turn each
// tileset entry into a result (passthrough, embedded, or skipped), write the
// converted map, and report a summary.
//
// Types:
//   - Converter (lookup table, tileset dir, tile size)
//   - Result (per-entry outcome, with the skip reason when there is one)
//   - RunStats (Total, Embedded, Passthrough, Skipped, OutputBytes)
//
// Functions:
//   - Run(ctx, cfg, log) → RunStats, error
//     load → convert entries in order → save. Only a failure to read the
//     source map or write the output is returned as an error; bad entries
//     are skipped and counted.
//   - (*Converter).Convert(ctx, entries) → []Result
package pipeline
