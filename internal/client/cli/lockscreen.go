package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/avarenkov/stockpos/internal/common"
)

// Unlock blocks until the gate is open. There is no attempt limit; a
// wrong PIN just clears and asks again. Typing "forgot" starts the
// reset flow, which sets the PIN back to the default and unlocks.
func (a *App) Unlock(ctx context.Context) {
	if !a.gate.Locked() {
		return
	}

	fmt.Println("App is locked.")

	for a.gate.Locked() {
		pin, err := GetPin("Enter PIN (or type 'forgot')", os.Stdout)
		if err != nil {
			log.Printf("error: %v", err)
			return
		}

		if strings.EqualFold(pin, "forgot") {
			a.forgotPin(ctx)
			continue
		}

		if !a.gate.Submit(pin, a.currentPin(ctx)) {
			fmt.Println("Wrong PIN.")
		}
	}
}

// forgotPin resets the PIN to the default and unlocks. The reset happens
// server-side first so the next lock uses the default PIN too.
func (a *App) forgotPin(ctx context.Context) {
	answer, err := GetSimpleText(a.reader, fmt.Sprintf("Reset PIN to %s? (y/n)", common.DefaultPin), os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if !strings.EqualFold(answer, "y") {
		return
	}

	if err := a.store.UpdatePin(ctx, common.DefaultPin); err != nil {
		log.Printf("error resetting PIN: %v", err)
	}
	a.gate.ForceUnlock()
	fmt.Println("PIN has been reset.")
}
