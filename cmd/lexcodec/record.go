package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bluesky-social/lexcodec/atproto/data"
	"github.com/bluesky-social/lexcodec/atproto/syntax"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"

	"github.com/urfave/cli/v2"
)

var cmdRoundTrip = &cli.Command{
	Name:      "roundtrip",
	Usage:     "decodes a record document and re-encodes it, checking nothing was lost",
	ArgsUsage: `<file|->`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "also require that property order is preserved",
		},
		&cli.StringFlag{
			Name:  "output",
			Usage: "format for printing the re-encoded document (json or yaml)",
			Value: "json",
		},
	},
	Action: runRoundTrip,
}

var cmdRecordCID = &cli.Command{
	Name:      "record-cid",
	Usage:     "computes the CID of a record document",
	ArgsUsage: `<file|->`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "blobs",
			Usage: "also list blobs referenced by the record",
		},
	},
	Action: runRecordCID,
}

var cmdDecodeCBOR = &cli.Command{
	Name:      "decode-cbor",
	Usage:     "decodes a DAG-CBOR record block (eg, from a repo export) and prints it as JSON",
	ArgsUsage: `<file|->`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "output",
			Usage: "format for printing the decoded document (json or yaml)",
			Value: "json",
		},
	},
	Action: runDecodeCBOR,
}

var errRoundTripMismatch = errors.New("re-encoded document does not match input")

// Decodes raw as a record and encodes it again. The re-encoded JSON is returned along with errRoundTripMismatch if it differs from the input. In strict mode property order must also match.
func roundTrip(raw []byte, strict bool) (lexutil.Variant, []byte, error) {
	rec, err := lexutil.DecodeRecord(raw)
	if err != nil {
		return nil, nil, err
	}
	out, err := lexutil.Encode(rec)
	if err != nil {
		return rec, nil, fmt.Errorf("encoding %s: %w", rec.LexiconType(), err)
	}
	if !data.RawEqual(raw, out) {
		return rec, out, errRoundTripMismatch
	}
	if strict {
		var compact bytes.Buffer
		if err := json.Compact(&compact, raw); err != nil {
			return rec, out, err
		}
		if !bytes.Equal(compact.Bytes(), out) {
			return rec, out, fmt.Errorf("%w: property order or formatting changed", errRoundTripMismatch)
		}
	}
	return rec, out, nil
}

func runRoundTrip(cctx *cli.Context) error {
	path := cctx.Args().First()
	if path == "" {
		return fmt.Errorf("need to provide file path (or '-' for stdin) as an argument")
	}
	raw, err := readFileOrStdin(path)
	if err != nil {
		return err
	}

	rec, out, err := roundTrip(raw, cctx.Bool("strict"))
	if rec != nil {
		if _, ok := rec.(*lexutil.UnknownVariant); ok {
			slog.Warn("record type not registered, round trip used generic data", "type", rec.LexiconType())
		} else {
			slog.Info("decoded record", "type", rec.LexiconType())
		}
	}
	if out != nil {
		if err := printDocument(out, cctx.String("output")); err != nil {
			return err
		}
	}
	if err != nil {
		var de *lexutil.DecodeError
		if errors.As(err, &de) {
			slog.Error("decode failed", "kind", de.Kind, "path", de.Path, "raw", de.Raw)
		}
		return err
	}
	return nil
}

func printDocument(out []byte, format string) error {
	switch format {
	case "json":
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, out, "", "  "); err != nil {
			return err
		}
		fmt.Println(pretty.String())
	case "yaml":
		y, err := jsonToYAML(out)
		if err != nil {
			return err
		}
		fmt.Print(string(y))
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
	return nil
}

func runRecordCID(cctx *cli.Context) error {
	path := cctx.Args().First()
	if path == "" {
		return fmt.Errorf("need to provide file path (or '-' for stdin) as an argument")
	}
	raw, err := readFileOrStdin(path)
	if err != nil {
		return err
	}
	rec, err := lexutil.DecodeRecord(raw)
	if err != nil {
		return err
	}
	c, err := lexutil.RecordCID(rec)
	if err != nil {
		return err
	}
	slog.Debug("computed record CID", "type", rec.LexiconType(), "cid", c)
	fmt.Println(c.String())

	if cctx.Bool("blobs") {
		blobs, err := recordBlobs(rec)
		if err != nil {
			return err
		}
		for _, b := range blobs {
			fmt.Printf("blob: %s\t%s\t%d\n", b.Ref, b.MimeType, b.Size)
		}
	}
	return nil
}

func recordBlobs(rec lexutil.Variant) ([]data.Blob, error) {
	b, err := lexutil.Encode(rec)
	if err != nil {
		return nil, err
	}
	obj, err := data.UnmarshalJSON(b)
	if err != nil {
		return nil, err
	}
	return data.ExtractBlobs(obj), nil
}

// Decodes a DAG-CBOR block as a record, going through its JSON form. Also returns the CID of the block itself.
func decodeCBORRecord(block []byte) (lexutil.Variant, syntax.CID, error) {
	obj, err := data.UnmarshalCBOR(block)
	if err != nil {
		return nil, "", err
	}
	js, err := json.Marshal(obj)
	if err != nil {
		return nil, "", err
	}
	rec, err := lexutil.DecodeRecord(js)
	if err != nil {
		return nil, "", err
	}
	c, err := data.RecordCIDPrefix.Sum(block)
	if err != nil {
		return nil, "", err
	}
	blockCID, err := syntax.CIDFromCid(c)
	if err != nil {
		return nil, "", err
	}
	return rec, blockCID, nil
}

func runDecodeCBOR(cctx *cli.Context) error {
	path := cctx.Args().First()
	if path == "" {
		return fmt.Errorf("need to provide file path (or '-' for stdin) as an argument")
	}
	block, err := readBytes(path)
	if err != nil {
		return err
	}
	rec, blockCID, err := decodeCBORRecord(block)
	if err != nil {
		return err
	}
	out, err := lexutil.Encode(rec)
	if err != nil {
		return err
	}
	recCID, err := lexutil.RecordCID(rec)
	if err != nil {
		return err
	}
	if recCID != blockCID {
		slog.Warn("re-encoded record has a different CID than the input block", "type", rec.LexiconType(), "block", blockCID, "record", recCID)
	} else {
		slog.Info("decoded record", "type", rec.LexiconType(), "cid", blockCID)
	}
	return printDocument(out, cctx.String("output"))
}
