// Package cli implements the interactive terminal front end for the
// in-memory currency converter.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"convsvc/internal/catalog"
	"convsvc/internal/rates"
)

// App drives the interactive menu loop. It operates entirely in memory
// and never touches the network or a database.
type App struct {
	provider  *rates.StaticTableProvider
	converter *rates.Converter
	catalog   *catalog.Catalog
	in        *bufio.Scanner
	out       io.Writer
}

func NewApp(in io.Reader, out io.Writer) *App {
	provider := rates.NewDefaultProvider()
	return &App{
		provider:  provider,
		converter: rates.NewConverter(provider),
		catalog:   catalog.NewDefault(),
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

// Run loops over the main menu until the user exits or input ends.
func (a *App) Run() {
	for {
		a.printMenu()
		choice, ok := a.readLine("Choose an option: ")
		if !ok {
			break
		}
		fmt.Fprintln(a.out)

		switch strings.TrimSpace(choice) {
		case "1":
			a.handleConvert()
		case "2":
			a.handleListCurrencies()
		case "3":
			a.handleCustomRate()
		case "4":
			a.handleRegisterCurrency()
		case "5":
			a.printAbout()
		case "0":
			fmt.Fprintln(a.out, "Goodbye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown choice. Try again.")
		}
		fmt.Fprintln(a.out)
	}
}

func (a *App) printMenu() {
	fmt.Fprintln(a.out, "==============================")
	fmt.Fprintln(a.out, "   Smart Currency Converter")
	fmt.Fprintln(a.out, "==============================")
	fmt.Fprintln(a.out, "1. Convert amount")
	fmt.Fprintln(a.out, "2. List supported currencies")
	fmt.Fprintln(a.out, "3. Override custom exchange rate")
	fmt.Fprintln(a.out, "4. Register a currency")
	fmt.Fprintln(a.out, "5. About this tool")
	fmt.Fprintln(a.out, "0. Exit")
}

func (a *App) handleConvert() {
	fmt.Fprintln(a.out, "--- Convert Amount ---")
	from, ok := a.readCode("From currency code (e.g. USD): ")
	if !ok {
		return
	}
	to, ok := a.readCode("To currency code (e.g. INR): ")
	if !ok {
		return
	}
	amount, ok := a.readFloat("Amount: ")
	if !ok {
		return
	}

	result, err := a.converter.Convert(from, to, amount)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "\n%.2f %s = %.2f %s\n", amount, from, result, to)
}

func (a *App) handleListCurrencies() {
	fmt.Fprintln(a.out, "--- Supported Currencies ---")
	fmt.Fprintf(a.out, "%-8s%-20s%s\n", "Code", "Name", "Symbol")
	fmt.Fprintln(a.out, "-------------------------------------")
	for _, c := range a.catalog.List() {
		fmt.Fprintf(a.out, "%-8s%-20s%s\n", c.Code, c.Name, c.Symbol)
	}
}

func (a *App) handleCustomRate() {
	fmt.Fprintln(a.out, "--- Custom Exchange Rate ---")
	from, ok := a.readCode("From currency code: ")
	if !ok {
		return
	}
	to, ok := a.readCode("To currency code: ")
	if !ok {
		return
	}
	rate, ok := a.readFloat(fmt.Sprintf("Custom rate (1 %s = ? %s): ", from, to))
	if !ok {
		return
	}

	if err := a.provider.SetCustomRate(from, to, rate); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Custom rate updated. Future conversions will use this rate.")
}

func (a *App) handleRegisterCurrency() {
	fmt.Fprintln(a.out, "--- Register Currency ---")
	code, ok := a.readCode("Currency code (e.g. CHF): ")
	if !ok {
		return
	}
	rate, ok := a.readFloat(fmt.Sprintf("Rate vs %s (1 %s = ? %s): ", a.provider.BaseCurrency(), a.provider.BaseCurrency(), code))
	if !ok {
		return
	}
	name, ok := a.readLine("Display name: ")
	if !ok {
		return
	}
	symbol, ok := a.readLine("Symbol: ")
	if !ok {
		return
	}

	if err := a.provider.RegisterCurrency(code, rate); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	a.catalog.Register(catalog.Currency{Code: code, Name: strings.TrimSpace(name), Symbol: strings.TrimSpace(symbol)})
	fmt.Fprintf(a.out, "Registered %s.\n", code)
}

func (a *App) printAbout() {
	fmt.Fprintln(a.out, "--- About ---")
	fmt.Fprintln(a.out, "In-memory currency converter backed by a static rate table.")
	fmt.Fprintln(a.out, "All rates are relative to a base currency and pairs are")
	fmt.Fprintln(a.out, "triangulated through the base. Custom per-pair overrides")
	fmt.Fprintln(a.out, "take precedence over table rates for that exact direction.")
}

func (a *App) readLine(prompt string) (string, bool) {
	fmt.Fprint(a.out, prompt)
	if !a.in.Scan() {
		return "", false
	}
	return a.in.Text(), true
}

func (a *App) readCode(prompt string) (string, bool) {
	line, ok := a.readLine(prompt)
	if !ok {
		return "", false
	}
	return strings.ToUpper(strings.TrimSpace(line)), true
}

func (a *App) readFloat(prompt string) (float64, bool) {
	for {
		line, ok := a.readLine(prompt)
		if !ok {
			return 0, false
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err == nil {
			return v, true
		}
		fmt.Fprintln(a.out, "Invalid number. Try again.")
	}
}
