package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/kataras/golog"

	"github.com/katalvlaran/graphpad/adjacency"
	"github.com/katalvlaran/graphpad/bfs"
	"github.com/katalvlaran/graphpad/core"
	"github.com/katalvlaran/graphpad/dfs"
	"github.com/katalvlaran/graphpad/dijkstra"
	"github.com/katalvlaran/graphpad/floyd"
)

// errQuit signals a clean "exit" from the command loop.
var errQuit = errors.New("quit")

const helpText = `commands:
  add node [id] [x y]            add a node (random short id when omitted)
  add edge <a> <b> [w] [directed]  add an edge, weight defaults to 1
  remove node <id>               remove a node and its incident edges
  remove edge <a> <b>            remove an edge
  move <id> <x> <y>              relocate a node
  print graph|list|matrix        show the graph, adjacency list or matrix
  dfs <id>                       depth-first traversal from id
  bfs <id>                       breadth-first traversal from id
  path bfs|dijkstra|floyd <a> <b>  shortest path between a and b
  help                           this text
  exit                           leave`

// session owns one interactive run: a mutable graph, an output sink and a
// logger for dispatch tracing.
type session struct {
	g   *core.Graph
	out io.Writer
	log *golog.Logger
}

func newSession(g *core.Graph, out io.Writer, log *golog.Logger) *session {
	return &session{g: g, out: out, log: log}
}

// Run reads commands line by line until EOF or "exit". Command failures are
// reported and the loop continues; only I/O errors abort the session.
func (s *session) Run(in io.Reader) error {
	fmt.Fprintln(s.out, styleTitle.Render("graphpad"), "- type 'help' for commands")

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, stylePrompt.Render("> "))
		if !sc.Scan() {
			fmt.Fprintln(s.out)

			return sc.Err()
		}

		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		s.log.Debugf("dispatch: %v", fields)
		if err := s.dispatch(fields); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			fmt.Fprintln(s.out, styleError.Render("error:"), err)
		}
	}
}

func (s *session) dispatch(fields []string) error {
	switch fields[0] {
	case "add":
		return s.cmdAdd(fields[1:])
	case "remove":
		return s.cmdRemove(fields[1:])
	case "move":
		return s.cmdMove(fields[1:])
	case "print":
		return s.cmdPrint(fields[1:])
	case "dfs":
		return s.cmdTraverse(fields[1:], "dfs")
	case "bfs":
		return s.cmdTraverse(fields[1:], "bfs")
	case "path":
		return s.cmdPath(fields[1:])
	case "help":
		fmt.Fprintln(s.out, helpText)

		return nil
	case "exit", "quit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q, try 'help'", fields[0])
	}
}

func (s *session) cmdAdd(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: add node|edge ...")
	}

	switch args[0] {
	case "node":
		return s.addNode(args[1:])
	case "edge":
		return s.addEdge(args[1:])
	default:
		return fmt.Errorf("cannot add %q", args[0])
	}
}

func (s *session) addNode(args []string) error {
	n := core.Node{}
	switch len(args) {
	case 0:
		n.ID = uuid.NewString()[:8]
	case 1:
		n.ID = args[0]
	case 3:
		n.ID = args[0]
		var err error
		if n.X, err = strconv.ParseFloat(args[1], 64); err != nil {
			return fmt.Errorf("bad x coordinate %q", args[1])
		}
		if n.Y, err = strconv.ParseFloat(args[2], 64); err != nil {
			return fmt.Errorf("bad y coordinate %q", args[2])
		}
	default:
		return errors.New("usage: add node [id] [x y]")
	}

	if err := s.g.AddNode(n); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "node", styleID.Render(n.ID), "added")

	return nil
}

func (s *session) addEdge(args []string) error {
	if len(args) < 2 {
		return errors.New("usage: add edge <a> <b> [w] [directed]")
	}

	e := core.Edge{From: args[0], To: args[1], Weight: 1}
	rest := args[2:]
	if len(rest) > 0 && rest[0] != "directed" {
		w, err := strconv.ParseFloat(rest[0], 64)
		if err != nil {
			// Malformed weight is not fatal: keep the default and say so.
			s.log.Warnf("invalid weight %q, using 1", rest[0])
			fmt.Fprintln(s.out, styleWarn.Render("warning:"), "invalid weight", rest[0], "- using 1")
		} else {
			e.Weight = w
		}
		rest = rest[1:]
	}
	if len(rest) > 0 {
		if rest[0] != "directed" {
			return fmt.Errorf("unexpected token %q", rest[0])
		}
		e.Directed = true
	}

	if err := s.g.AddEdge(e); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "edge", styleID.Render(e.From), arrow(e.Directed), styleID.Render(e.To),
		"weight", trimFloat(e.Weight), "added")

	return nil
}

func (s *session) cmdRemove(args []string) error {
	switch {
	case len(args) == 2 && args[0] == "node":
		if err := s.g.RemoveNode(args[1]); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "node", styleID.Render(args[1]), "removed")

		return nil
	case len(args) == 3 && args[0] == "edge":
		if err := s.g.RemoveEdge(args[1], args[2]); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "edge", styleID.Render(args[1]), "-", styleID.Render(args[2]), "removed")

		return nil
	default:
		return errors.New("usage: remove node <id> | remove edge <a> <b>")
	}
}

func (s *session) cmdMove(args []string) error {
	if len(args) != 3 {
		return errors.New("usage: move <id> <x> <y>")
	}
	x, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("bad x coordinate %q", args[1])
	}
	y, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("bad y coordinate %q", args[2])
	}

	if err := s.g.MoveNode(args[0], x, y); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "node %s moved to (%s, %s)\n", styleID.Render(args[0]), trimFloat(x), trimFloat(y))

	return nil
}

func (s *session) cmdPrint(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: print graph|list|matrix")
	}

	switch args[0] {
	case "graph":
		fmt.Fprint(s.out, renderGraph(s.g))

		return nil
	case "list":
		fmt.Fprint(s.out, renderList(s.g, adjacency.BuildList(s.g)))

		return nil
	case "matrix":
		m, err := adjacency.BuildMatrix(s.g)
		if err != nil {
			return err
		}
		fmt.Fprint(s.out, renderMatrix(m))

		return nil
	default:
		return fmt.Errorf("cannot print %q", args[0])
	}
}

func (s *session) cmdTraverse(args []string, kind string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: %s <id>", kind)
	}
	if !s.g.HasNode(args[0]) {
		return fmt.Errorf("node %q: %w", args[0], core.ErrNodeNotFound)
	}

	var order []string
	switch kind {
	case "dfs":
		res, err := dfs.DFS(s.g, args[0])
		if err != nil {
			return err
		}
		order = res.Order
	default:
		res, err := bfs.BFS(s.g, args[0])
		if err != nil {
			return err
		}
		order = res.Order
	}

	fmt.Fprintln(s.out, kind+":", renderOrder(order))

	return nil
}

func (s *session) cmdPath(args []string) error {
	if len(args) != 3 {
		return errors.New("usage: path bfs|dijkstra|floyd <a> <b>")
	}
	from, to := args[1], args[2]

	var (
		res *core.PathResult
		err error
	)
	switch args[0] {
	case "bfs":
		res, err = bfs.ShortestPath(s.g, from, to)
	case "dijkstra":
		res, err = dijkstra.ShortestPath(s.g, from, to)
	case "floyd":
		var all *floyd.Result
		if all, err = floyd.AllPairs(s.g); err == nil {
			res, err = all.Path(from, to)
		}
	default:
		return fmt.Errorf("unknown algorithm %q", args[0])
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "path:", renderOrder(res.Path), " distance:", trimFloat(res.Distance))

	return nil
}

func arrow(directed bool) string {
	if directed {
		return "->"
	}

	return "--"
}
