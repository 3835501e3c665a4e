package uci

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"rondo/pkg/chess"
	"rondo/pkg/engine"
)

type Engine interface {
	Prepare()
	Clear()
	Search(ctx context.Context, searchParams engine.SearchParams) (engine.SearchInfo, error)
}

type Protocol struct {
	name         string
	author       string
	version      string
	options      []Option
	engine       Engine
	logger       *log.Logger
	positions    []chess.Position
	thinking     bool
	engineOutput chan engine.SearchInfo
	cancel       context.CancelFunc
}

func New(name, author, version string, engine Engine, options []Option) *Protocol {
	var initPosition, err = chess.NewPositionFromFEN(chess.InitialPositionFEN)
	if err != nil {
		panic(err)
	}
	return &Protocol{
		name:      name,
		author:    author,
		version:   version,
		engine:    engine,
		logger:    log.New(os.Stderr, "", log.LstdFlags),
		options:   options,
		positions: []chess.Position{initPosition},
	}
}

// Run multiplexes stdin commands with search output on one goroutine, so
// command handlers never race with result printing.
func (uci *Protocol) Run(logger *log.Logger) {
	uci.logger = logger

	var commands = make(chan string)

	go func() {
		defer close(commands)
		readCommands(commands)
	}()

	var searchResult engine.SearchInfo
	for {
		select {
		case si, ok := <-uci.engineOutput:
			if ok {
				fmt.Println(searchInfoToUci(si))
				searchResult = si
			} else {
				fmt.Println(bestMoveString(searchResult))
				uci.thinking = false
				uci.cancel = nil
				uci.engineOutput = nil
				searchResult = engine.SearchInfo{}
			}
		case commandLine, ok := <-commands:
			if !ok {
				//uci quit
				return
			}
			var err = uci.handle(commandLine)
			if err != nil {
				logger.Println(err)
			}
		}
	}
}

func readCommands(commands chan<- string) {
	var scanner = bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		var commandLine = scanner.Text()
		if commandLine == "quit" {
			return
		}
		if commandLine != "" {
			commands <- commandLine
		}
	}
}

func (uci *Protocol) handle(commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	var commandName = fields[0]
	fields = fields[1:]

	if uci.thinking {
		if commandName == "stop" {
			uci.cancel()
			return nil
		}
		return errors.New("search still run")
	}

	var h func(fields []string) error

	switch commandName {
	case "uci":
		h = uci.uciCommand
	case "setoption":
		h = uci.setOptionCommand
	case "isready":
		h = uci.isReadyCommand
	case "position":
		h = uci.positionCommand
	case "go":
		h = uci.goCommand
	case "ucinewgame":
		h = uci.uciNewGameCommand
	}

	if h == nil {
		return errors.New("command not found")
	}

	return h(fields)
}

func (uci *Protocol) uciCommand(fields []string) error {
	fmt.Printf("id name %s %s\n", uci.name, uci.version)
	fmt.Printf("id author %s\n", uci.author)
	for _, option := range uci.options {
		fmt.Println(option.UciString())
	}
	fmt.Println("uciok")
	return nil
}

func (uci *Protocol) setOptionCommand(fields []string) error {
	if len(fields) < 4 {
		return errors.New("invalid setoption arguments")
	}
	var name, value = fields[1], fields[3]
	for _, option := range uci.options {
		if strings.EqualFold(option.UciName(), name) {
			return option.Set(value)
		}
	}
	return errors.New("unhandled option")
}

func (uci *Protocol) isReadyCommand(fields []string) error {
	uci.engine.Prepare()
	fmt.Println("readyok")
	return nil
}

func (uci *Protocol) positionCommand(fields []string) error {
	var args = fields
	if len(args) == 0 {
		return errors.New("invalid position arguments")
	}
	var token = args[0]
	var fen string
	var movesIndex = findIndexString(args, "moves")
	if token == "startpos" {
		fen = chess.InitialPositionFEN
	} else if token == "fen" {
		if movesIndex == -1 {
			fen = strings.Join(args[1:], " ")
		} else {
			fen = strings.Join(args[1:movesIndex], " ")
		}
	} else {
		return errors.New("unknown position command")
	}
	var p, err = chess.NewPositionFromFEN(fen)
	if err != nil {
		return err
	}
	var positions = []chess.Position{p}
	if movesIndex >= 0 && movesIndex+1 < len(args) {
		for _, smove := range args[movesIndex+1:] {
			var newPos, ok = positions[len(positions)-1].MakeMoveLAN(smove)
			if !ok {
				return errors.New("parse move failed")
			}
			positions = append(positions, newPos)
		}
	}
	uci.positions = positions
	return nil
}

func (uci *Protocol) goCommand(fields []string) error {
	var limits = parseLimits(fields)
	var ctx, cancel = context.WithCancel(context.Background())
	uci.cancel = cancel
	uci.thinking = true
	uci.engineOutput = make(chan engine.SearchInfo, 3)
	go func() {
		defer cancel()
		var searchResult, err = uci.engine.Search(ctx, engine.SearchParams{
			Positions: uci.positions,
			Limits:    limits,
			Progress: func(si engine.SearchInfo) {
				select {
				case uci.engineOutput <- si:
				default:
				}
			},
		})
		if err != nil {
			// A mated or stalemated root has no best move; the closed
			// channel still produces a "bestmove (none)" answer.
			uci.logger.Println("search:", err)
		} else {
			uci.engineOutput <- searchResult
		}
		close(uci.engineOutput)
	}()
	return nil
}

// bestMoveString always answers a go command, so a GUI waiting on bestmove
// never hangs when the search comes back empty.
func bestMoveString(si engine.SearchInfo) string {
	if len(si.MainLine) == 0 {
		return "bestmove (none)"
	}
	return fmt.Sprintf("bestmove %v", si.MainLine[0])
}

func (uci *Protocol) uciNewGameCommand(fields []string) error {
	uci.engine.Clear()
	return nil
}

func searchInfoToUci(si engine.SearchInfo) string {
	var sb = &strings.Builder{}
	fmt.Fprintf(sb, "info depth %v", si.Depth)
	if si.Score.Mate != 0 {
		fmt.Fprintf(sb, " score mate %v", si.Score.Mate)
	} else {
		fmt.Fprintf(sb, " score cp %v", si.Score.Centipawns)
	}
	var timeMs = si.Time.Milliseconds()
	var nps = si.Nodes * 1000 / (timeMs + 1)
	fmt.Fprintf(sb, " nodes %v time %v nps %v", si.Nodes, timeMs, nps)
	if len(si.MainLine) != 0 {
		fmt.Fprintf(sb, " pv")
		for _, move := range si.MainLine {
			sb.WriteString(" ")
			sb.WriteString(move.String())
		}
	}
	return sb.String()
}

func parseLimits(args []string) (result engine.LimitsType) {
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "ponder":
			result.Ponder = true
		case "wtime":
			result.WhiteTime, _ = strconv.Atoi(args[i+1])
			i++
		case "btime":
			result.BlackTime, _ = strconv.Atoi(args[i+1])
			i++
		case "winc":
			result.WhiteIncrement, _ = strconv.Atoi(args[i+1])
			i++
		case "binc":
			result.BlackIncrement, _ = strconv.Atoi(args[i+1])
			i++
		case "movestogo":
			result.MovesToGo, _ = strconv.Atoi(args[i+1])
			i++
		case "depth":
			result.Depth, _ = strconv.Atoi(args[i+1])
			i++
		case "nodes":
			result.Nodes, _ = strconv.Atoi(args[i+1])
			i++
		case "mate":
			result.Mate, _ = strconv.Atoi(args[i+1])
			i++
		case "movetime":
			result.MoveTime, _ = strconv.Atoi(args[i+1])
			i++
		case "infinite":
			result.Infinite = true
		}
	}
	return
}

func findIndexString(slice []string, value string) int {
	for p, v := range slice {
		if v == value {
			return p
		}
	}
	return -1
}
