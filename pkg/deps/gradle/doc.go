// Package gradle extracts library declarations from Gradle build files.
//
// # Build Scripts
//
// [Script] scans Groovy (build.gradle) and Kotlin (build.gradle.kts) DSL text.
// Every dependencies block is visited, including ones nested in buildscript,
// allprojects or subprojects, and both declaration styles are recognized:
//
//	implementation 'com.google.guava:guava:33.0.0-jre'
//	implementation("com.squareup.okhttp3:okhttp:4.12.0")
//	compile group: 'junit', name: 'junit', version: '4.13.2'
//
// The scanner tokenizes the text rather than matching it with a regular
// expression, so comments, nested closures and multi-line statements are
// handled. Project, file and catalog references produce no declarations.
//
// # Version Catalogs
//
// [Catalog] reads the [libraries] table of a libs.versions.toml file,
// resolving version.ref entries against [versions].
//
// Neither extractor fails: unrecognized input yields an empty result.
package gradle
