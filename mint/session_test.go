package mint

import (
	"bytes"
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testAPIURL = "https://mint.example.com/transaction"

func newTestSession(ledger Ledger, notify func(solana.Signature)) *QRSession {
	return NewQRSession(ledger, testAPIURL, 5*time.Millisecond, notify, zap.NewNop())
}

func TestSessionMintURL(t *testing.T) {
	session := newTestSession(&stubLedger{}, func(solana.Signature) {})

	got := session.MintURL()
	require.True(t, strings.HasPrefix(got, "solana:"), "must use the solana: protocol")

	link, err := url.QueryUnescape(strings.TrimPrefix(got, "solana:"))
	require.NoError(t, err)
	assert.Equal(t, testAPIURL+"?reference="+session.Reference().String(), link)
}

func TestSessionReferenceIsUniquePerSession(t *testing.T) {
	first := newTestSession(&stubLedger{}, func(solana.Signature) {})
	second := newTestSession(&stubLedger{}, func(solana.Signature) {})

	assert.NotEqual(t, first.Reference(), second.Reference())
	assert.False(t, first.Reference().IsZero())
}

func TestSessionQRCode(t *testing.T) {
	session := newTestSession(&stubLedger{}, func(solana.Signature) {})

	png, err := session.QRCode(256)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")), "must render a PNG")
}

func TestSessionNotifiesEachNewTransactionOnce(t *testing.T) {
	ledger := &stubLedger{}
	notified := make(chan solana.Signature, 8)

	session := newTestSession(ledger, func(sig solana.Signature) { notified <- sig })
	defer session.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		session.Start(ctx)
		close(done)
	}()

	// Nothing on the ledger yet: the session just keeps watching.
	select {
	case sig := <-notified:
		t.Fatalf("unexpected notification %s", sig)
	case <-time.After(30 * time.Millisecond):
	}

	first := sigWithByte(1)
	ledger.setSigs(first)
	assert.Equal(t, first, waitForSignature(t, notified))

	// A second payment against the same reference is reported once, using
	// the first signature as the floor.
	second := sigWithByte(2)
	ledger.setSigs(second, first)
	assert.Equal(t, second, waitForSignature(t, notified))

	select {
	case sig := <-notified:
		t.Fatalf("duplicate notification %s", sig)
	case <-time.After(30 * time.Millisecond):
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start did not return after cancellation")
	}
}

func TestSessionCloseStopsPolling(t *testing.T) {
	ledger := &stubLedger{}
	notified := make(chan solana.Signature, 8)

	session := newTestSession(ledger, func(sig solana.Signature) { notified <- sig })

	done := make(chan struct{})
	go func() {
		session.Start(context.Background())
		close(done)
	}()

	session.Close()
	session.Close() // idempotent

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start did not return after Close")
	}

	// Ticks must have stopped: a transaction appearing now goes unnoticed.
	ledger.setSigs(sigWithByte(9))
	select {
	case sig := <-notified:
		t.Fatalf("notification after Close: %s", sig)
	case <-time.After(30 * time.Millisecond):
	}
}

func waitForSignature(t *testing.T, ch <-chan solana.Signature) solana.Signature {
	t.Helper()
	select {
	case sig := <-ch:
		return sig
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for notification")
		return solana.Signature{}
	}
}
