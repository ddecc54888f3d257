// Package io provides JSON export of version check results.
//
// # JSON Format
//
// A terminal result is written as one object per declared library, in
// declaration order:
//
//	{
//	  "libraries": [
//	    {
//	      "group": "com.google.guava",
//	      "artifact": "guava",
//	      "using": "31.0-jre",
//	      "latest": "33.0.0-jre",
//	      "metadata_url": "https://repo1.maven.org/maven2/com/google/guava/guava/maven-metadata.xml",
//	      "outdated": true
//	    }
//	  ]
//	}
//
// Libraries whose latest version could not be resolved report "unknown" and
// omit metadata_url.
//
// # Export
//
// Use [WriteJSON] to write to any io.Writer, or [ExportJSON] to write a file:
//
//	err := io.ExportJSON(result, "versions.json")
package io
