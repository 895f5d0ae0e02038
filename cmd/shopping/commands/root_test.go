package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"shopping/internal/payment"
	"shopping/internal/product"
)

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("SHOPPING_LOG_LEVEL", "")
	t.Setenv("SHOPPING_CARD", "")

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

const canonicalOutput = "Ali: Stok durumu değişti: Stok var.\n" +
	"Bora: Stok durumu değişti: Stok var.\n" +
	"Laptop üretildi. \n" +
	"Akıllı Telefon üretildi. \n" +
	"Kredi kartı ile 200 lira ödendi.\n" +
	"Havale ile 150 lira ödendi.\n"

func TestRoot_RunsDemo(t *testing.T) {
	out, errOut, err := run(t)
	require.NoError(t, err)
	require.Equal(t, canonicalOutput, out)
	require.Empty(t, errOut)
}

func TestDemo(t *testing.T) {
	out, _, err := run(t, "demo")
	require.NoError(t, err)
	require.Equal(t, canonicalOutput, out)
}

func TestDemo_DebugLogsStayOffStdout(t *testing.T) {
	out, errOut, err := run(t, "--log-level", "debug")
	require.NoError(t, err)
	require.Equal(t, canonicalOutput, out)
	require.Contains(t, errOut, "card charged")
}

func TestNotify(t *testing.T) {
	out, _, err := run(t, "notify", "Tükendi.", "-c", "Ayşe", "-c", "Can")
	require.NoError(t, err)
	require.Equal(t,
		"Ayşe: Stok durumu değişti: Tükendi.\n"+
			"Can: Stok durumu değişti: Tükendi.\n",
		out)
}

func TestProduct(t *testing.T) {
	out, _, err := run(t, "product", "SMARTPHONE", "laptop")
	require.NoError(t, err)
	require.Equal(t, "Akıllı Telefon üretildi. \nLaptop üretildi. \n", out)
}

func TestProduct_Unknown(t *testing.T) {
	out, _, err := run(t, "product", "laptop", "Tablet")
	require.ErrorIs(t, err, product.ErrUnknownKind)
	require.Empty(t, out)
}

func TestPay(t *testing.T) {
	out, _, err := run(t, "pay", "150", "--method", payment.MethodBankTransfer)
	require.NoError(t, err)
	require.Equal(t, "Havale ile 150 lira ödendi.\n", out)

	out, _, err = run(t, "pay", "200")
	require.NoError(t, err)
	require.Equal(t, "Kredi kartı ile 200 lira ödendi.\n", out)
}

func TestPay_CardAdapterIsSilent(t *testing.T) {
	out, _, err := run(t, "pay", "100", "-m", payment.MethodCardAdapter)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestPay_Errors(t *testing.T) {
	_, _, err := run(t, "pay", "100", "-m", "cash")
	require.ErrorIs(t, err, payment.ErrUnknownMethod)

	_, _, err = run(t, "pay", "yüz")
	require.Error(t, err)
}

func TestRoot_BadCard(t *testing.T) {
	_, _, err := run(t, "--card", "1234")
	require.Error(t, err)
}
