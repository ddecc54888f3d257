// Package versions orders library version strings.
//
// Versions that parse as semantic versions are compared with
// github.com/Masterminds/semver/v3. Everything else (e.g. "1.2.3.Final",
// "2.0-M1", "r09") falls back to a Maven-style comparison that splits the
// string into numeric and qualifier tokens:
//
//	1.0-alpha < 1.0-beta < 1.0-M1 < 1.0-rc1 < 1.0-SNAPSHOT < 1.0 = 1.0.Final < 1.0-sp1
//
// Numeric tokens compare numerically, known qualifiers by rank and unknown
// qualifiers lexically (case-insensitive).
package versions
