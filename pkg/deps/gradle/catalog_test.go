package gradle

import (
	"reflect"
	"testing"

	"github.com/matzehuels/depcheck/pkg/deps"
)

func TestCatalog_Extract(t *testing.T) {
	content := `
[versions]
okhttp = "4.12.0"
kotlin = { strictly = "1.9.22" }

[libraries]
okhttp = { module = "com.squareup.okhttp3:okhttp", version.ref = "okhttp" }
guava = "com.google.guava:guava:33.0.0-jre"
slf4j = { group = "org.slf4j", name = "slf4j-api", version = "2.0.9" }
kotlin-stdlib = { module = "org.jetbrains.kotlin:kotlin-stdlib", version.ref = "kotlin" }
junit = { module = "junit:junit", version = { require = "4.13.2" } }
bom-managed = { module = "androidx.compose.ui:ui" }
missing-ref = { module = "g.x:a", version.ref = "nope" }

[plugins]
android = { id = "com.android.application", version = "8.2.0" }
`
	want := []deps.Library{
		lib("com.squareup.okhttp3", "okhttp", "4.12.0"),
		lib("com.google.guava", "guava", "33.0.0-jre"),
		lib("org.slf4j", "slf4j-api", "2.0.9"),
		lib("org.jetbrains.kotlin", "kotlin-stdlib", "1.9.22"),
		lib("junit", "junit", "4.13.2"),
	}

	got := Catalog{}.Extract(content)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() =\n%v\nwant\n%v", got, want)
	}
}

func TestCatalog_ExtractInvalid(t *testing.T) {
	for _, input := range []string{"", "[libraries", "dependencies { compile 'a:b:1' }"} {
		if got := (Catalog{}).Extract(input); len(got) != 0 {
			t.Errorf("Extract(%q) = %v, want empty", input, got)
		}
	}
}

func TestCatalog_Supports(t *testing.T) {
	if !(Catalog{}).Supports("gradle/libs.versions.toml") {
		t.Error("Supports(libs.versions.toml) = false")
	}
	if (Catalog{}).Supports("build.gradle") {
		t.Error("Supports(build.gradle) = true")
	}
}
