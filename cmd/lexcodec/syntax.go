package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bluesky-social/lexcodec/atproto/syntax"

	"github.com/urfave/cli/v2"
)

var cmdSyntax = &cli.Command{
	Name:      "syntax",
	Usage:     "validates an identifier string and prints its parts",
	ArgsUsage: `<type> <value>`,
	Description: "Supported types: " + strings.Join(syntaxTypeNames(), ", ") + ".\n" +
		"Prints the canonical string form and any parsed components; exits with an error if the value does not validate.",
	Action: runSyntax,
}

// each checker validates the value, and returns lines of detail to print after the canonical form
var syntaxCheckers = map[string]func(string) (string, []string, error){
	"did": func(s string) (string, []string, error) {
		d, err := syntax.ParseDID(s)
		if err != nil {
			return "", nil, err
		}
		return d.String(), []string{
			"method: " + d.Method(),
			"identifier: " + d.Identifier(),
		}, nil
	},
	"handle": func(s string) (string, []string, error) {
		h, err := syntax.ParseHandle(s)
		if err != nil {
			return "", nil, err
		}
		return h.String(), []string{
			"normalized: " + h.Normalize().String(),
			fmt.Sprintf("allowed TLD: %t", h.AllowedTLD()),
		}, nil
	},
	"at-identifier": func(s string) (string, []string, error) {
		id, err := syntax.ParseAtIdentifier(s)
		if err != nil {
			return "", nil, err
		}
		kind := "handle"
		if id.IsDID() {
			kind = "did"
		}
		return id.String(), []string{"kind: " + kind}, nil
	},
	"nsid": func(s string) (string, []string, error) {
		n, err := syntax.ParseNSID(s)
		if err != nil {
			return "", nil, err
		}
		return n.String(), []string{
			"authority: " + n.Authority(),
			"name: " + n.Name(),
		}, nil
	},
	"rkey": func(s string) (string, []string, error) {
		r, err := syntax.ParseRecordKey(s)
		if err != nil {
			return "", nil, err
		}
		return r.String(), nil, nil
	},
	"tid": func(s string) (string, []string, error) {
		t, err := syntax.ParseTID(s)
		if err != nil {
			return "", nil, err
		}
		return t.String(), []string{
			"timestamp (UTC): " + t.Time().Format(syntax.AtprotoDatetimeLayout),
			"timestamp (local): " + t.Time().Local().Format(time.RFC3339),
			fmt.Sprintf("clock ID: %d", t.ClockID()),
			fmt.Sprintf("uint64: 0x%x", t.Integer()),
		}, nil
	},
	"language": func(s string) (string, []string, error) {
		l, err := syntax.ParseLanguage(s)
		if err != nil {
			return "", nil, err
		}
		return l.String(), nil, nil
	},
	"at-uri": func(s string) (string, []string, error) {
		u, err := syntax.ParseATURI(s)
		if err != nil {
			return "", nil, err
		}
		var lines []string
		if auth, err := u.Authority(); err == nil {
			lines = append(lines, "authority: "+auth.String())
		}
		if coll, err := u.Collection(); err == nil {
			lines = append(lines, "collection: "+coll.String())
		}
		if rkey, err := u.RecordKey(); err == nil {
			lines = append(lines, "record key: "+rkey.String())
		}
		return u.String(), lines, nil
	},
	"cid": func(s string) (string, []string, error) {
		c, err := syntax.ParseCID(s)
		if err != nil {
			return "", nil, err
		}
		bin, err := c.Cid()
		if err != nil {
			return "", nil, err
		}
		return c.String(), []string{
			fmt.Sprintf("codec: 0x%x", bin.Prefix().Codec),
			fmt.Sprintf("multihash type: 0x%x", bin.Prefix().MhType),
		}, nil
	},
	"datetime": func(s string) (string, []string, error) {
		d, err := syntax.ParseDatetime(s)
		if err != nil {
			return "", nil, err
		}
		t, err := d.Time()
		if err != nil {
			return "", nil, err
		}
		return d.String(), []string{"normalized: " + t.UTC().Format(syntax.AtprotoDatetimeLayout)}, nil
	},
}

func syntaxTypeNames() []string {
	names := make([]string, 0, len(syntaxCheckers))
	for k := range syntaxCheckers {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func runSyntax(cctx *cli.Context) error {
	if cctx.Args().Len() != 2 {
		return fmt.Errorf("need to provide identifier type and value as arguments")
	}
	kind := strings.ToLower(cctx.Args().Get(0))
	check, ok := syntaxCheckers[kind]
	if !ok {
		return fmt.Errorf("unsupported identifier type %q (expected one of: %s)", kind, strings.Join(syntaxTypeNames(), ", "))
	}
	canonical, lines, err := check(cctx.Args().Get(1))
	if err != nil {
		return err
	}
	fmt.Println(canonical)
	for _, l := range lines {
		fmt.Println(l)
	}
	return nil
}
