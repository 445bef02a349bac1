// seed_catalog exporta el dataset mock (productos, inventario y pedidos
// sembrados) como fixtures JSON, útiles para poblar entornos de demo o para
// inspeccionar el catálogo sin levantar la API.
//
// Uso: go run ./cmd/seed_catalog [directorio-destino]
// Por defecto escribe en ./fixtures.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/Lubriportal-api/internal/infrastructure/memory"
)

func main() {
	outDir := "fixtures"
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Crear directorio: %v\n", err)
		os.Exit(1)
	}

	_, productRepo, inventoryRepo, _, _, orderRepo, err := memory.NewSeededStores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Sembrar dataset: %v\n", err)
		os.Exit(1)
	}

	products, err := productRepo.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Listar productos: %v\n", err)
		os.Exit(1)
	}
	levels, err := inventoryRepo.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Listar inventario: %v\n", err)
		os.Exit(1)
	}
	orders, err := orderRepo.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Listar pedidos: %v\n", err)
		os.Exit(1)
	}

	for _, out := range []struct {
		name string
		data interface{}
	}{
		{"products.json", products},
		{"inventory.json", levels},
		{"orders.json", orders},
	} {
		if err := writeJSON(filepath.Join(outDir, out.name), out.data); err != nil {
			fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", out.name, err)
			os.Exit(1)
		}
		fmt.Printf("Escrito %s\n", filepath.Join(outDir, out.name))
	}
}

func writeJSON(path string, data interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
