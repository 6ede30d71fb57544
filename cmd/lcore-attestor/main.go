// Command lcore-attestor is a development attestor. It verifies submission
// envelopes and hands out fake transaction receipts so the device CLI and
// daemon can be exercised without a chain.
package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"sync"

	"github.com/Modern-Society-Labs/lcore-sdk/internal/domain"
	"github.com/Modern-Society-Labs/lcore-sdk/internal/jws"
)

type receipt struct {
	TxHash      string `json:"txHash"`
	BlockNumber uint64 `json:"blockNumber"`
}

type submitResponse struct {
	Success bool     `json:"success"`
	Data    *receipt `json:"data,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// ledger mints receipts. Block numbers are sequential; the tx hash is a
// digest of the envelope so resubmissions are recognizable in logs.
type ledger struct {
	mu    sync.Mutex
	block uint64
}

func (l *ledger) mint(env domain.Envelope) receipt {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.block++
	sum := sha256.Sum256(append([]byte(env.Signature), env.Payload...))
	return receipt{
		TxHash:      "0x" + hex.EncodeToString(sum[:]),
		BlockNumber: l.block,
	}
}

func main() {
	addr := flag.String("addr", ":8001", "listen address")
	flag.Parse()

	l := &ledger{}

	http.HandleFunc("/api/device/submit", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		if r.Method != http.MethodPost {
			reject(w, http.StatusMethodNotAllowed, "POST only")
			return
		}
		var env domain.Envelope
		if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
			reject(w, http.StatusBadRequest, "malformed envelope: "+err.Error())
			return
		}
		if err := jws.Verify(env.Signature, env.DID); err != nil {
			reject(w, http.StatusUnauthorized, "signature verification failed: "+err.Error())
			return
		}
		signed, err := jws.Payload(env.Signature)
		if err != nil || !bytes.Equal(signed, env.Payload) {
			reject(w, http.StatusUnauthorized, "payload does not match signed bytes")
			return
		}

		rc := l.mint(env)
		log.Printf("accepted submission from %s (block %d)", env.DID, rc.BlockNumber)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(submitResponse{Success: true, Data: &rc})
	})

	http.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	log.Println("attestor listening on", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}

func reject(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(submitResponse{Success: false, Error: msg})
}
