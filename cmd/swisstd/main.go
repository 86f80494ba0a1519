// Command swisstd is a terminal front end for the Swiss pairing
// engine: register players, lock a section, pair rounds, record
// results, and print standings/pairings as terminal tables.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"swisstd/internal/auth"
	"swisstd/internal/export"
	"swisstd/internal/store"
	"swisstd/internal/swiss"
)

// bgCtx is the background context used for every store call. Each
// command is short and synchronous, in one-shot and repl mode alike;
// nothing here needs cancellation or deadlines.
func bgCtx() context.Context { return context.Background() }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	args := os.Args[1:]
	if args[0] == "repl" {
		runREPL(args[1:])
		return
	}

	db, err := openGormStore()
	if err != nil {
		log.Fatalf("swisstd: %v", err)
	}
	if err := dispatch(db, args); err != nil {
		log.Fatalf("swisstd: %v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: swisstd <command> [args]

commands:
  create <section> [--rounds N] [--uscf]
  register <section> <playerId> <name> [--rating N]
  lock <section>
  pair <section>
  cancel-round <section>
  result <section> <round> <board> <token>
  standings <section>
  pairings <section> <round>
  swap <section> <round> <board>
  replace <section> <round> <board> <oldId> <newId>
  force-color <section> <round> <board> <whiteId>
  export-pdf <section> round <round> <outfile>
  export-pdf <section> standings <outfile>
  director create <username> <password>
  repl [--store memory|sqlite]`)
}

func openGormStore() (*store.GormStore, error) {
	path, err := store.DBPath()
	if err != nil {
		return nil, err
	}
	return store.OpenGormStore(path)
}

func dispatch(g *store.GormStore, args []string) error {
	cmd := args[0]
	rest := args[1:]

	if cmd == "director" {
		return dispatchDirector(g, rest)
	}

	return runCommand(g, cmd, rest)
}

func dispatchDirector(g *store.GormStore, args []string) error {
	if len(args) != 3 || args[0] != "create" {
		return fmt.Errorf("usage: director create <username> <password>")
	}
	svc := auth.New(g.DB())
	if err := svc.Migrate(); err != nil {
		return err
	}
	return svc.CreateDirector(args[1], args[2])
}

// runCommand executes one engine-facing command against a SectionStore,
// printing its result to stdout. It is shared between one-shot process
// invocations (backed by SQLite) and the repl (backed by whichever
// store the session chose).
func runCommand(st store.SectionStore, cmd string, args []string) error {
	switch cmd {
	case "create":
		return cmdCreate(st, args)
	case "register":
		return cmdRegister(st, args)
	case "lock":
		return cmdLock(st, args)
	case "pair":
		return cmdPair(st, args)
	case "cancel-round":
		return cmdCancelRound(st, args)
	case "result":
		return cmdResult(st, args)
	case "standings":
		return cmdStandings(st, args)
	case "pairings":
		return cmdPairings(st, args)
	case "swap":
		return cmdSwap(st, args)
	case "replace":
		return cmdReplace(st, args)
	case "force-color":
		return cmdForceColor(st, args)
	case "export-pdf":
		return cmdExportPDF(st, args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func runREPL(args []string) {
	backend := "memory"
	for i, a := range args {
		if a == "--store" && i+1 < len(args) {
			backend = args[i+1]
		}
	}

	var st store.SectionStore
	switch backend {
	case "memory":
		st = store.NewMemoryStore()
	case "sqlite":
		g, err := openGormStore()
		if err != nil {
			log.Fatalf("swisstd repl: %v", err)
		}
		st = g
	default:
		log.Fatalf("swisstd repl: unknown store %q", backend)
	}

	fmt.Printf("swisstd repl (store=%s). One command per line, blank line or EOF to exit.\n", backend)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			return
		}
		fields := strings.Fields(line)
		if err := runCommand(st, fields[0], fields[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
}

func cmdCreate(st store.SectionStore, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: create <section> [--rounds N] [--uscf]")
	}
	cfg := swiss.DefaultConfig()
	s := swiss.NewSection(args[0], cfg)
	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "--rounds":
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil {
				return fmt.Errorf("--rounds: %w", err)
			}
			s.PlannedRounds = n
		case "--uscf":
			s.USCFMode = true
		}
	}
	return st.Save(bgCtx(), s)
}

func cmdRegister(st store.SectionStore, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: register <section> <playerId> <name> [--rating N]")
	}
	s, err := st.Load(bgCtx(), args[0])
	if err != nil {
		return err
	}
	rating := 0
	for i := 3; i < len(args); i++ {
		if args[i] == "--rating" {
			i++
			rating, err = strconv.Atoi(args[i])
			if err != nil {
				return fmt.Errorf("--rating: %w", err)
			}
		}
	}
	if err := s.Register(swiss.Player{ID: swiss.PlayerID(args[1]), Name: args[2], Rating: rating}); err != nil {
		return err
	}
	return st.Save(bgCtx(), s)
}

func cmdLock(st store.SectionStore, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: lock <section>")
	}
	s, err := st.Load(bgCtx(), args[0])
	if err != nil {
		return err
	}
	s.Lock()
	return st.Save(bgCtx(), s)
}

func cmdPair(st store.SectionStore, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: pair <section>")
	}
	s, err := st.Load(bgCtx(), args[0])
	if err != nil {
		return err
	}
	result, err := swiss.PairNextRound(s)
	if err != nil {
		return err
	}
	if err := st.Save(bgCtx(), s); err != nil {
		return err
	}
	printPairings(s, result.Pairings)
	return nil
}

func cmdCancelRound(st store.SectionStore, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: cancel-round <section>")
	}
	return store.CancelCurrentRound(bgCtx(), st, args[0])
}

func cmdResult(st store.SectionStore, args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: result <section> <round> <board> <token>")
	}
	s, err := st.Load(bgCtx(), args[0])
	if err != nil {
		return err
	}
	round, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("round: %w", err)
	}
	board, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}
	if err := swiss.ApplyResult(s, round, board, args[3]); err != nil {
		return err
	}
	return st.Save(bgCtx(), s)
}

func cmdStandings(st store.SectionStore, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: standings <section>")
	}
	s, err := st.Load(bgCtx(), args[0])
	if err != nil {
		return err
	}
	rows := swiss.ComputeStandings(s)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Rank", "Name", "Score", "Buch", "Med", "SB", "Cum"})
	for _, pr := range rows {
		table.Append([]string{
			strconv.Itoa(pr.Rank),
			pr.Player.Name,
			fmt.Sprintf("%.1f", pr.Player.Score.Float64()),
			fmt.Sprintf("%.1f", pr.Buchholz.Float64()),
			fmt.Sprintf("%.1f", pr.ModifiedMedian.Float64()),
			fmt.Sprintf("%.1f", pr.SonnebornBerger.Float64()),
			fmt.Sprintf("%.1f", pr.Cumulative.Float64()),
		})
	}
	table.Render()
	return nil
}

func cmdPairings(st store.SectionStore, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: pairings <section> <round>")
	}
	s, err := st.Load(bgCtx(), args[0])
	if err != nil {
		return err
	}
	round, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("round: %w", err)
	}
	for i := range s.Rounds {
		if s.Rounds[i].Number == round {
			printPairings(s, s.Rounds[i].Pairings)
			return nil
		}
	}
	return fmt.Errorf("round %d not found", round)
}

func cmdSwap(st store.SectionStore, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: swap <section> <round> <board>")
	}
	return withDirectorSection(st, args[0], func(s *swiss.Section) error {
		round, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		board, err := strconv.Atoi(args[2])
		if err != nil {
			return err
		}
		return swiss.TDSwap(s, round, board)
	})
}

func cmdReplace(st store.SectionStore, args []string) error {
	if len(args) != 5 {
		return fmt.Errorf("usage: replace <section> <round> <board> <oldId> <newId>")
	}
	return withDirectorSection(st, args[0], func(s *swiss.Section) error {
		round, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		board, err := strconv.Atoi(args[2])
		if err != nil {
			return err
		}
		return swiss.TDReplace(s, round, board, swiss.PlayerID(args[3]), swiss.PlayerID(args[4]))
	})
}

func cmdForceColor(st store.SectionStore, args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: force-color <section> <round> <board> <whiteId>")
	}
	return withDirectorSection(st, args[0], func(s *swiss.Section) error {
		round, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		board, err := strconv.Atoi(args[2])
		if err != nil {
			return err
		}
		return swiss.TDForceColor(s, round, board, swiss.PlayerID(args[3]))
	})
}

func cmdExportPDF(st store.SectionStore, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: export-pdf <section> round <round> <outfile> | export-pdf <section> standings <outfile>")
	}
	s, err := st.Load(bgCtx(), args[0])
	if err != nil {
		return err
	}

	var pdf []byte
	var outfile string
	switch args[1] {
	case "round":
		if len(args) != 4 {
			return fmt.Errorf("usage: export-pdf <section> round <round> <outfile>")
		}
		round, err := strconv.Atoi(args[2])
		if err != nil {
			return err
		}
		pdf, err = export.RoundPairingsToPDF(s, round)
		if err != nil {
			return err
		}
		outfile = args[3]
	case "standings":
		if len(args) != 3 {
			return fmt.Errorf("usage: export-pdf <section> standings <outfile>")
		}
		pdf, err = export.StandingsToPDF(s)
		if err != nil {
			return err
		}
		outfile = args[2]
	default:
		return fmt.Errorf("unknown export target %q", args[1])
	}

	return os.WriteFile(outfile, pdf, 0644)
}

// withDirectorSection loads a section, runs edit against it, and saves
// on success. When st is a GormStore it first requires a director login
// via SWISSTD_DIRECTOR_USER/SWISSTD_DIRECTOR_PASS; with any other store
// (the memory-backed repl) no credential is checked. Override edits are
// the one class of command gated behind a credential check, matching
// the teacher's admin-only gating of destructive tournament operations.
func withDirectorSection(st store.SectionStore, sectionName string, edit func(*swiss.Section) error) error {
	g, ok := st.(*store.GormStore)
	if ok {
		svc := auth.New(g.DB())
		user, pass := os.Getenv("SWISSTD_DIRECTOR_USER"), os.Getenv("SWISSTD_DIRECTOR_PASS")
		ok, err := svc.CheckCredentials(user, pass)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("director credentials rejected; set SWISSTD_DIRECTOR_USER/SWISSTD_DIRECTOR_PASS")
		}
	}

	s, err := st.Load(bgCtx(), sectionName)
	if err != nil {
		return err
	}
	if err := edit(s); err != nil {
		return err
	}
	return st.Save(bgCtx(), s)
}

func printPairings(s *swiss.Section, pairings []swiss.Pairing) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Board", "White", "Black", "Result"})
	for _, p := range pairings {
		black := "BYE"
		if !p.IsBye {
			if bp, ok := s.Players[*p.BlackID]; ok {
				black = bp.Name
			}
		}
		result := "-"
		if p.Result != nil {
			result = string(*p.Result)
		}
		white := string(p.WhiteID)
		if wp, ok := s.Players[p.WhiteID]; ok {
			white = wp.Name
		}
		table.Append([]string{strconv.Itoa(p.Board), white, black, result})
	}
	table.Render()
}
