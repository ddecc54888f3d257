// Package java extracts library declarations from Maven pom.xml files.
//
// [POM] implements [deps.Extractor]. It reads both <dependencies> and
// <dependencyManagement><dependencies>, in document order, and resolves
// ${property} references against <properties> and the project's own
// coordinates:
//
//	libs := java.POM{}.Extract(string(data))
//
// Malformed XML yields no declarations rather than an error.
//
// [deps.Extractor]: github.com/matzehuels/depcheck/pkg/deps.Extractor
package java
