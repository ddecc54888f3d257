package manifests

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		text     string
		want     string
	}{
		{"gradle by name", "build.gradle", "", "build.gradle"},
		{"kotlin by name", "app/build.gradle.kts", "", "build.gradle"},
		{"catalog by name", "gradle/libs.versions.toml", "", "libs.versions.toml"},
		{"pom by name", "pom.xml", "", "pom.xml"},
		{"name wins over content", "build.gradle", "<project/>", "build.gradle"},
		{"stdin xml", "-", "  <?xml version=\"1.0\"?><project/>", "pom.xml"},
		{"stdin catalog", "", "[versions]\na = \"1\"\n\n[libraries]\nx = \"g:a:1\"", "libs.versions.toml"},
		{"stdin gradle", "", "dependencies { compile 'a:b:1' }", "build.gradle"},
		{"unknown name falls back to content", "deps.txt", "<project/>", "pom.xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.filename, tt.text).Type(); got != tt.want {
				t.Errorf("Detect(%q) = %s, want %s", tt.filename, got, tt.want)
			}
		})
	}
}

func TestDetect_Extracts(t *testing.T) {
	libs := Detect("", "dependencies { compile 'com.example:foo:1.0.0' }").Extract("dependencies { compile 'com.example:foo:1.0.0' }")
	if len(libs) != 1 || libs[0].String() != "com.example:foo:1.0.0" {
		t.Errorf("got %v", libs)
	}
}

func TestTypes(t *testing.T) {
	want := []string{"build.gradle", "libs.versions.toml", "pom.xml"}
	got := Types()
	if len(got) != len(want) {
		t.Fatalf("Types() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Types()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestExamples(t *testing.T) {
	tests := []struct {
		file string
		want []string
	}{
		{"gradle/build.gradle", []string{
			"com.android.support:appcompat-v7:28.0.0",
			"com.squareup.okhttp3:okhttp:3.12.0",
			"com.google.code.gson:gson:2.8.5",
			"junit:junit:4.12",
			"com.android.support.test.espresso:espresso-core:3.0.2",
		}},
		{"gradle/build.gradle.kts", []string{
			"io.ktor:ktor-server-core:2.3.7",
			"ch.qos.logback:logback-classic:1.4.14",
			"org.jetbrains.kotlinx:kotlinx-coroutines-bom:1.7.3",
			"org.jetbrains.kotlin:kotlin-test:1.9.22",
		}},
		{"gradle/libs.versions.toml", []string{
			"com.squareup.okhttp3:okhttp:4.9.0",
			"com.squareup.okhttp3:logging-interceptor:4.9.0",
			"com.squareup.retrofit2:retrofit:2.9.0",
			"com.google.guava:guava:31.1-jre",
		}},
		{"maven/pom.xml", []string{
			"com.fasterxml.jackson.core:jackson-databind:2.15.2",
			"org.slf4j:slf4j-api:2.0.7",
			"org.junit.jupiter:junit-jupiter:5.9.3",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join("..", "..", "..", "examples", filepath.FromSlash(tt.file))
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read example: %v", err)
			}

			libs := Detect(path, string(data)).Extract(string(data))
			if len(libs) != len(tt.want) {
				t.Fatalf("got %d libraries %v, want %d", len(libs), libs, len(tt.want))
			}
			for i, want := range tt.want {
				if got := libs[i].String(); got != want {
					t.Errorf("libs[%d] = %s, want %s", i, got, want)
				}
			}
		})
	}
}
