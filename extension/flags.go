// flags.go defines constants for CLI flag names shared across extensions.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "dry-run" -> FlagDryRun).

package extension

// Flag name constants for CLI commands.
const (
	// Boolean flags

	FlagCheck = "check" // Report would-change files without writing
	FlagDiff  = "diff"  // Show diff output
	FlagLocal = "local" // Use local scope

	// String flags

	FlagIndex = "index" // Document served for directory references
)
