package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mdp/qrterminal/v3"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	qrcode "github.com/grkuntzmd/qrencode"
	"github.com/grkuntzmd/qrencode/qrconfig"
	"github.com/grkuntzmd/qrencode/qrimage"
)

var encodeFlags struct {
	data     string
	version  int
	ecc      string
	mask     int
	out      string
	scale    int
	border   int
	terminal bool
	open     bool
	preset   string
	config   string
}

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode data as a QR Code symbol",
	RunE:  runEncode,
}

func init() {
	f := encodeCmd.Flags()
	f.StringVar(&encodeFlags.data, "data", "", "payload to encode (required)")
	f.IntVar(&encodeFlags.version, "version", 0, "QR version 1-40 (0 chooses the smallest version that fits)")
	f.StringVar(&encodeFlags.ecc, "ecc", "M", "error correction level: L, M, Q, or H")
	f.IntVar(&encodeFlags.mask, "mask", -1, "mask 0-7 (-1 chooses the lowest-penalty mask)")
	f.StringVar(&encodeFlags.out, "out", "", "output image path (.png or .svg); empty uses the preset's out, if any")
	f.IntVar(&encodeFlags.scale, "scale", 8, "pixels per module for PNG output")
	f.IntVar(&encodeFlags.border, "border", 4, "quiet-zone width, in modules")
	f.BoolVar(&encodeFlags.terminal, "terminal", false, "also show the data in the terminal as a separate qrterminal symbol (level L, its own version and mask)")
	f.BoolVar(&encodeFlags.open, "open", false, "open the output file in the system viewer once written")
	f.StringVar(&encodeFlags.preset, "preset", "", "named preset from --config to use as a base")
	f.StringVar(&encodeFlags.config, "config", "qrencode.yaml", "path to a qrconfig preset file")
	_ = encodeCmd.MarkFlagRequired("data")
}

func runEncode(cmd *cobra.Command, args []string) error {
	preset, err := loadPreset()
	if err != nil {
		return err
	}
	applyFlagOverrides(&preset)

	ecc, ok := eccFromString(preset.ECC)
	if !ok {
		return fmt.Errorf("invalid --ecc %q", preset.ECC)
	}

	var q *qrcode.QRCode
	data := []byte(encodeFlags.data)
	if preset.Version > 0 {
		mask := qrcode.Mask(preset.Mask)
		if preset.Mask < 0 {
			q, err = qrcode.EncodeAuto(data, ecc,
				qrcode.WithMinVersion(qrcode.Version(preset.Version)),
				qrcode.WithMaxVersion(qrcode.Version(preset.Version)))
		} else {
			q, err = qrcode.Encode(data, qrcode.Version(preset.Version), ecc, mask)
		}
	} else {
		opts := []qrcode.Option{qrcode.WithBoostECL(true)}
		if preset.Mask >= 0 {
			opts = append(opts, qrcode.WithMask(qrcode.Mask(preset.Mask)))
		}
		q, err = qrcode.EncodeAuto(data, ecc, opts...)
	}
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	slog.Info("encoded QR code", "version", q.Version, "ecc", q.ECCLevel, "mask", q.Mask, "size", q.Size)

	if encodeFlags.terminal || (encodeFlags.out == "" && !encodeFlags.terminal && preset.Out == "") {
		qrterminal.GenerateHalfBlock(encodeFlags.data, qrterminal.L, os.Stdout)
	}

	out := preset.Out
	if encodeFlags.out != "" {
		out = encodeFlags.out
	}
	if out == "" {
		return nil
	}

	if err := writeOutput(q, out, preset); err != nil {
		return err
	}
	slog.Info("wrote output", "path", out)

	if encodeFlags.open {
		if err := browser.OpenFile(out); err != nil {
			slog.Warn("could not open output in system viewer", "err", err)
		}
	}
	return nil
}

func loadPreset() (qrconfig.Preset, error) {
	cfg, err := qrconfig.Load(encodeFlags.config)
	if err != nil {
		if os.IsNotExist(err) {
			return qrconfig.Preset{Version: 0, ECC: "M", Mask: -1, Scale: 8, Border: 4}, nil
		}
		return qrconfig.Preset{}, err
	}
	return cfg.Preset(encodeFlags.preset)
}

func applyFlagOverrides(p *qrconfig.Preset) {
	f := encodeCmd.Flags()
	if f.Changed("version") {
		p.Version = encodeFlags.version
	}
	if f.Changed("ecc") {
		p.ECC = encodeFlags.ecc
	}
	if f.Changed("mask") {
		p.Mask = encodeFlags.mask
	}
	if f.Changed("scale") {
		p.Scale = encodeFlags.scale
	}
	if f.Changed("border") {
		p.Border = encodeFlags.border
	}
}

func eccFromString(s string) (qrcode.ECCLevel, bool) {
	switch strings.ToUpper(s) {
	case "L":
		return qrcode.Low, true
	case "M":
		return qrcode.Medium, true
	case "Q":
		return qrcode.Quartile, true
	case "H":
		return qrcode.High, true
	default:
		return 0, false
	}
}

func writeOutput(q *qrcode.QRCode, path string, preset qrconfig.Preset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	opts := qrimage.RenderOptions{Scale: preset.Scale, Border: preset.Border}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return qrimage.WriteSVG(f, q, preset.Border)
	default:
		return qrimage.WritePNG(f, q, opts)
	}
}
