package cmd

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// APIServer serves the router on the given port and blocks until the
// listener fails.
func APIServer(router *chi.Mux, port string) {
	addr := fmt.Sprintf(":%s", port)
	fmt.Printf("Studio reservations API listening on http://localhost%s\n", addr)

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
