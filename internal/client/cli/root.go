package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.Mode == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.Mode)
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to stockpos CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	for {
		fmt.Printf("pos %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			fmt.Println("Available commands: (d)ashboard, (l)ist, add, edit, delete, search, sell, sales, reports, export, lowstock, settings, lock, pin, backup, restore, exit")
		case "dashboard", "d":
			a.dashboard(ctx)
		case "list", "l":
			a.list(ctx)
		case "add":
			a.addProduct(ctx)
		case "edit":
			a.editProduct(ctx)
		case "delete":
			a.deleteProduct(ctx)
		case "search":
			a.search(ctx, args)
		case "sell":
			a.sell(ctx)
		case "sales":
			a.todaysSales(ctx)
		case "reports":
			a.reports(ctx)
		case "export":
			a.exportInventory(ctx)
		case "lowstock":
			a.exportLowStock(ctx)
		case "settings":
			a.showSettings(ctx)
		case "lock":
			a.toggleLock(ctx)
		case "pin":
			a.changePin(ctx)
		case "backup":
			a.backup(ctx)
		case "restore":
			if len(args) == 0 {
				fmt.Println("Usage: restore <file>")
				continue
			}
			a.restore(ctx, args[0])
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}
