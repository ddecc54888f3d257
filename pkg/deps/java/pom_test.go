package java

import (
	"testing"

	"github.com/matzehuels/depcheck/pkg/deps"
)

func TestPOM_Supports(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"pom.xml", true},
		{"service/pom.xml", true},
		{"guava-33.0.pom", true},
		{"Pom.xml", false},
		{"build.gradle", false},
		{"package.json", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := (POM{}).Supports(tt.filename); got != tt.want {
				t.Errorf("Supports(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestPOM_Extract(t *testing.T) {
	content := `<?xml version="1.0" encoding="UTF-8"?>
<project>
  <groupId>com.example</groupId>
  <artifactId>my-app</artifactId>
  <version>1.0.0</version>

  <properties>
    <spring.version>5.3.0</spring.version>
  </properties>

  <dependencies>
    <dependency>
      <groupId>org.springframework</groupId>
      <artifactId>spring-core</artifactId>
      <version>${spring.version}</version>
    </dependency>
    <dependency>
      <groupId>com.google.guava</groupId>
      <artifactId>guava</artifactId>
      <version>31.0-jre</version>
    </dependency>
    <dependency>
      <groupId>junit</groupId>
      <artifactId>junit</artifactId>
      <version>4.13</version>
      <scope>test</scope>
    </dependency>
    <dependency>
      <groupId>com.example</groupId>
      <artifactId>my-lib</artifactId>
      <version>${project.version}</version>
    </dependency>
    <dependency>
      <groupId>org.managed</groupId>
      <artifactId>no-version</artifactId>
    </dependency>
  </dependencies>

  <dependencyManagement>
    <dependencies>
      <dependency>
        <groupId>org.slf4j</groupId>
        <artifactId>slf4j-api</artifactId>
        <version>${slf4j.version}</version>
      </dependency>
    </dependencies>
  </dependencyManagement>
</project>`

	got := POM{}.Extract(content)
	want := []deps.Library{
		{GroupID: "org.springframework", ArtifactID: "spring-core", Version: "5.3.0"},
		{GroupID: "com.google.guava", ArtifactID: "guava", Version: "31.0-jre"},
		{GroupID: "junit", ArtifactID: "junit", Version: "4.13"},
		{GroupID: "com.example", ArtifactID: "my-lib", Version: "1.0.0"},
		{GroupID: "org.slf4j", ArtifactID: "slf4j-api", Version: "${slf4j.version}"},
	}

	if len(got) != len(want) {
		t.Fatalf("got %d libraries, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("libs[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestPOM_ExtractParentVersion(t *testing.T) {
	content := `<project>
  <parent>
    <groupId>com.example</groupId>
    <artifactId>parent</artifactId>
    <version>2.1.0</version>
  </parent>
  <artifactId>child</artifactId>
  <dependencies>
    <dependency>
      <groupId>${project.groupId}</groupId>
      <artifactId>sibling</artifactId>
      <version>${project.version}</version>
    </dependency>
  </dependencies>
</project>`

	got := POM{}.Extract(content)
	if len(got) != 1 {
		t.Fatalf("got %d libraries, want 1", len(got))
	}
	if got[0].String() != "com.example:sibling:2.1.0" {
		t.Errorf("got %s, want com.example:sibling:2.1.0", got[0])
	}
}

func TestPOM_ExtractMalformed(t *testing.T) {
	for _, input := range []string{"", "<project><dependencies>", "not xml at all"} {
		if got := (POM{}).Extract(input); len(got) != 0 {
			t.Errorf("Extract(%q) = %v, want empty", input, got)
		}
	}
}

func TestPOM_ExtractKeepsDuplicates(t *testing.T) {
	content := `<project><dependencies>
  <dependency><groupId>g</groupId><artifactId>a</artifactId><version>1</version></dependency>
  <dependency><groupId>g</groupId><artifactId>a</artifactId><version>1</version></dependency>
</dependencies></project>`

	if got := (POM{}).Extract(content); len(got) != 2 {
		t.Errorf("got %d libraries, want 2", len(got))
	}
}
