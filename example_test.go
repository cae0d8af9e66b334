package vaultexport_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aretw0/vaultexport"
)

// Example_export converts a two-row catalog and lists the notes written.
func Example_export() {
	tmpDir, err := os.MkdirTemp("", "vaultexport-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	csvPath := filepath.Join(tmpDir, "catalog.csv")
	catalog := "ID,Category,Sub-Category,Display Name,Primary Link,Author Name\n" +
		"h-1,Hooks,General,My Hook,https://example.com/hook,ann\n" +
		"t-1,Tooling,Linters,Foo/Bar,https://example.com/foo,bob\n"
	if err := os.WriteFile(csvPath, []byte(catalog), 0644); err != nil {
		log.Fatal(err)
	}

	report, err := vaultexport.Export(context.Background(), csvPath, filepath.Join(tmpDir, "vault"))
	if err != nil {
		log.Fatal(err)
	}

	for _, note := range report.Notes {
		fmt.Println(note)
	}
	fmt.Println(report.Index)
	// Output:
	// Hooks/My Hook.md
	// Tooling/Linters/FooBar.md
	// _Index.md
}

// ExampleStatus shows the checklist summary of a freshly exported vault.
func ExampleStatus() {
	tmpDir, err := os.MkdirTemp("", "vaultexport-status-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	csvPath := filepath.Join(tmpDir, "catalog.csv")
	catalog := "ID,Category,Display Name,Primary Link,Author Name\n" +
		"a,Hooks,A,https://a.example,ann\n" +
		"b,Hooks,B,https://b.example,bob\n"
	if err := os.WriteFile(csvPath, []byte(catalog), 0644); err != nil {
		log.Fatal(err)
	}

	vault := filepath.Join(tmpDir, "vault")
	ctx := context.Background()
	if _, err := vaultexport.Export(ctx, csvPath, vault); err != nil {
		log.Fatal(err)
	}

	summary, _, err := vaultexport.Status(ctx, vault)
	if err != nil {
		log.Fatal(err)
	}
	for _, s := range summary {
		fmt.Printf("%s: %d notes, %d reviewed\n", s.Category, s.Total, s.Reviewed)
	}
	// Output:
	// Hooks: 2 notes, 0 reviewed
}
