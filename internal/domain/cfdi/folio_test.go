package cfdi_test

import (
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juguetron/agent-api/internal/domain/cfdi"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

// TestAllocate_FormatoDelIdentificador el identificador sigue la forma
// {prefijo}-{serie}{añoDosDígitos}-{folio} observada en el portal
// (ej. C10126-M24-543210).
func TestAllocate_FormatoDelIdentificador(t *testing.T) {
	a := cfdi.NewFolioAllocator("C10126", 543210)

	series, folio, invoiceID := a.Allocate(cfdi.ChannelPhysicalStore, testNow)

	assert.Equal(t, "M", series)
	assert.Equal(t, "543210", folio)
	assert.Equal(t, "C10126-M24-543210", invoiceID)
}

// TestAllocate_GramaticaOpaca el identificador se valida por estructura
// (segmentos y prefijos), no por valores numéricos exactos.
func TestAllocate_GramaticaOpaca(t *testing.T) {
	a := cfdi.NewFolioAllocator("", 100000)

	_, _, invoiceID := a.Allocate(cfdi.ChannelOnlineStore, testNow)

	assert.Regexp(t, regexp.MustCompile(`^C10126-W\d{2}-\d{6}$`), invoiceID)
}

// TestAllocate_FoliosConsecutivos el contador entrega folios consecutivos a
// partir del inicio configurado.
func TestAllocate_FoliosConsecutivos(t *testing.T) {
	a := cfdi.NewFolioAllocator("C10126", 100000)

	_, f1, _ := a.Allocate(cfdi.ChannelPhysicalStore, testNow)
	_, f2, _ := a.Allocate(cfdi.ChannelPhysicalStore, testNow)
	_, f3, _ := a.Allocate(cfdi.ChannelPhysicalStore, testNow)

	assert.Equal(t, []string{"100000", "100001", "100002"}, []string{f1, f2, f3})
}

// TestAllocate_SinColisionesConcurrentes 1000 asignaciones concurrentes desde
// múltiples goroutines producen 1000 folios distintos, sin colisiones.
func TestAllocate_SinColisionesConcurrentes(t *testing.T) {
	const n = 1000
	a := cfdi.NewFolioAllocator("C10126", 0)

	var wg sync.WaitGroup
	folios := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, folio, _ := a.Allocate(cfdi.ChannelPhysicalStore, testNow)
			folios <- folio
		}()
	}
	wg.Wait()
	close(folios)

	seen := make(map[string]struct{}, n)
	for f := range folios {
		_, dup := seen[f]
		require.False(t, dup, "folio repetido: %s", f)
		seen[f] = struct{}{}
	}
	assert.Len(t, seen, n)
}

// TestAllocate_AsignadoresAisladosNoComparten dos asignadores independientes
// no comparten estado: cada test puede instanciar el suyo y razonar en aislado.
func TestAllocate_AsignadoresAisladosNoComparten(t *testing.T) {
	a1 := cfdi.NewFolioAllocator("C10126", 100000)
	a2 := cfdi.NewFolioAllocator("C10126", 100000)

	_, f1, _ := a1.Allocate(cfdi.ChannelPhysicalStore, testNow)
	_, f2, _ := a2.Allocate(cfdi.ChannelPhysicalStore, testNow)

	assert.Equal(t, f1, f2, "asignadores con el mismo inicio entregan el mismo primer folio")
}
