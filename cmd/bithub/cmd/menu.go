package cmd

import (
	"context"
	"github.com/kurumiimari/bithub/prompt"
)

func printTitle(c *console) {
	p := c.prompter
	p.Println("\n------------------------------------------------")
	p.Boldf("         ##### Welcome to BitHub #####\n")
	p.Boldf("                 v%s", version)
	p.Printf("------------------------------------------------\n\n")
	p.Println("*Press Ctrl+C at any time to exit the program.")
}

func runMenu(ctx context.Context, c *console) error {
	p := c.prompter
	printTitle(c)

	for {
		p.Boldf("\n1. Seed Phrase Generator")
		p.Boldf("2. Real-time Quotation")
		choice, err := p.Ask(ctx, "\nChoose an option (1 or 2): ")
		if prompt.IsExit(err) {
			p.Println("\n\nExiting the program...")
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			p.Boldf("\n*Seed Phrase Generator")
			err = c.mode(ctx, runSeed)
		case "2":
			p.Boldf("\n*Real-time Quotation")
			err = c.mode(ctx, runQuotes)
		default:
			p.Errorf("Invalid choice. Please enter '1' or '2'.")
			continue
		}
		if err != nil {
			return err
		}

		again, err := p.Confirm(ctx, "Would you like to return to the main menu? (y/n): ")
		if prompt.IsExit(err) {
			p.Println("\n\nExiting the program...")
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			p.Println("\nExiting the program...")
			return nil
		}
	}
}
