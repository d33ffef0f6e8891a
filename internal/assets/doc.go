// Package assets provides starter résumé templates for the init command.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in templates)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── Resolver          - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in templates (en, es) embedded at
// compile time.
//
// FilesystemLoader allows users to keep their own starters in a directory,
// with path traversal protection and symlink resolution.
//
// Resolver tries the custom FilesystemLoader first, falling back to
// EmbeddedLoader if the template is not found.
//
// # Directory Structure
//
//	{basePath}/
//	└── templates/
//	    └── {name}.md
//
// # Security
//
// Template names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
