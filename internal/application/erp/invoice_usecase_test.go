package erp_test

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juguetron/agent-api/internal/application/dto"
	"github.com/juguetron/agent-api/internal/application/erp"
)

func newUseCase() *erp.InvoiceUseCase {
	return erp.NewInvoiceUseCase(rand.New(rand.NewSource(1)), "https://api.juguetron.mx/invoices")
}

// TestGenerate_FacturaExitosa identificador FAC-xxxxxx, PDF colgando de la base
// configurada y montos formateados en MXN.
func TestGenerate_FacturaExitosa(t *testing.T) {
	uc := newUseCase()

	resp, err := uc.Generate(dto.ERPInvoiceRequest{OrderID: "O40112345", RFC: "XAXX010101000"})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Regexp(t, regexp.MustCompile(`^FAC-\d{6}$`), resp.InvoiceID)
	assert.Equal(t, "https://api.juguetron.mx/invoices/"+resp.InvoiceID+".pdf", resp.PDFURL)
	assert.Equal(t, "Factura generada para orden O40112345", resp.Message)
	assert.Regexp(t, regexp.MustCompile(`^\$\d+\.\d{2} MXN$`), resp.Total)
	assert.Regexp(t, regexp.MustCompile(`^\$\d+\.\d{2} MXN$`), resp.Tax)
}

// TestGenerate_IVADelDieciseisPorCiento el IVA reportado es el 16% del total,
// redondeado a centavos.
func TestGenerate_IVADelDieciseisPorCiento(t *testing.T) {
	uc := newUseCase()

	resp, err := uc.Generate(dto.ERPInvoiceRequest{OrderID: "O40112345", RFC: "XAXX010101000"})
	require.NoError(t, err)

	total := mustAmount(t, resp.Total)
	tax := mustAmount(t, resp.Tax)
	want := total.Mul(decimal.NewFromFloat(0.16)).Round(2)
	assert.True(t, tax.Equal(want), "IVA %s, esperado %s de un total %s", tax, want, total)
}

// TestGenerate_RFCCorto un RFC bajo la longitud mínima es error.
func TestGenerate_RFCCorto(t *testing.T) {
	uc := newUseCase()

	_, err := uc.Generate(dto.ERPInvoiceRequest{OrderID: "O40112345", RFC: "CORTO"})

	require.Error(t, err)
	assert.ErrorIs(t, err, erp.ErrInvalidRFC)
}

// mustAmount convierte "$1234.56 MXN" a decimal.
func mustAmount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	s = strings.TrimSuffix(strings.TrimPrefix(s, "$"), " MXN")
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}
