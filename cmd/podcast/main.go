package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/hdprajwal/podcast-creator/config"
	"github.com/hdprajwal/podcast-creator/pkg/archive"
	"github.com/hdprajwal/podcast-creator/pkg/audio"
	"github.com/hdprajwal/podcast-creator/pkg/otel"
	"github.com/hdprajwal/podcast-creator/pkg/podcast"

	"github.com/joho/godotenv"
)

var version = "dev"

type options struct {
	Config string
	Input  string
	Output string

	Style    string
	Duration string
	Audience string

	TextModel   string
	SpeechModel string
	Voice       string
	Token       string

	Archive bool
	Yes     bool
	Plain   bool
}

func main() {
	var o options

	flag.StringVar(&o.Config, "config", "config.yaml", "config file, the Gemini defaults are used when missing")
	flag.StringVar(&o.Input, "input", "-", "source text file, - for stdin")
	flag.StringVar(&o.Output, "output", ".", "output directory")

	flag.StringVar(&o.Style, "style", podcast.DefaultStyle, "podcast style: "+strings.Join(podcast.Styles, ", "))
	flag.StringVar(&o.Duration, "duration", podcast.DefaultDuration, "target duration: "+strings.Join(podcast.Durations, ", "))
	flag.StringVar(&o.Audience, "audience", podcast.DefaultAudience, "target audience: "+strings.Join(podcast.Audiences, ", "))

	flag.StringVar(&o.TextModel, "text-model", "", "text model id")
	flag.StringVar(&o.SpeechModel, "speech-model", "", "speech model id")
	flag.StringVar(&o.Voice, "voice", "", "prebuilt voice name")
	flag.StringVar(&o.Token, "token", "", "api key, defaults to the configured token")

	flag.BoolVar(&o.Archive, "archive", false, "also write a zip bundle")
	flag.BoolVar(&o.Yes, "yes", false, "skip editing the transcript")
	flag.BoolVar(&o.Plain, "plain", false, "strip markdown from the transcript")

	flag.Parse()

	godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	telemetry, err := otel.Setup(ctx, "podcast", version)

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	defer telemetry.Shutdown(context.Background())

	if err := run(ctx, o, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, o options, stdin io.Reader, stdout io.Writer) error {
	cfg, err := config.Load(o.Config)

	if err != nil {
		return err
	}

	if o.Plain {
		cfg.Podcast.Plain = true
	}

	if o.Voice != "" {
		cfg.Podcast.Voice = o.Voice
	}

	token := o.Token

	if token == "" {
		token = cfg.Podcast.Token
	}

	g, err := cfg.Generator(o.TextModel, o.SpeechModel)

	if err != nil {
		return err
	}

	input, err := readInput(o.Input, stdin)

	if err != nil {
		return err
	}

	if err := os.MkdirAll(o.Output, 0o755); err != nil {
		return err
	}

	session := podcast.NewSession(token)

	fmt.Fprintln(stdout, "Generating transcript...")

	transcript, err := g.GenerateTranscript(ctx, session, input, podcast.Parameters{
		Style:    o.Style,
		Duration: o.Duration,
		Audience: o.Audience,
	})

	if err != nil {
		return err
	}

	transcriptPath := filepath.Join(o.Output, "transcript.txt")

	if err := os.WriteFile(transcriptPath, []byte(transcript+"\n"), 0o644); err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Transcript written to", transcriptPath)

	if !o.Yes {
		if err := editTranscript(ctx, transcriptPath, o.Input == "-", stdin, stdout); err != nil {
			return err
		}
	}

	edited, err := os.ReadFile(transcriptPath)

	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Generating podcast audio...")

	result, err := g.GeneratePodcast(ctx, session, string(edited))

	if err != nil {
		return err
	}

	audioPath := filepath.Join(o.Output, result.FileName("podcast"))

	if err := os.WriteFile(audioPath, result.Data, 0o644); err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Podcast written to", audioPath)

	if !o.Archive {
		return nil
	}

	return writeArchive(session, o.Output, stdout)
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}

	data, err := os.ReadFile(path)
	return string(data), err
}

func writeArchive(session *podcast.Session, dir string, stdout io.Writer) error {
	created := time.Now()

	path := filepath.Join(dir, archive.FileName(created))

	f, err := os.Create(path)

	if err != nil {
		return err
	}

	defer f.Close()

	bundle := archive.Bundle{
		Text:       session.Text,
		Prompt:     session.Prompt,
		Transcript: session.EditedTranscript,

		Audio:   session.Audio,
		Created: created,
	}

	if d, err := audio.Probe(session.Audio); err == nil {
		bundle.Duration = d
	}

	manifest, err := archive.Write(f, bundle)

	if err != nil {
		return err
	}

	slog.Debug("archive written", "path", path, "members", len(manifest.Members))
	fmt.Fprintln(stdout, "Archive written to", path)

	return f.Close()
}

func editTranscript(ctx context.Context, path string, stdinConsumed bool, stdin io.Reader, stdout io.Writer) error {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return runEditor(ctx, editor, path)
	}

	if stdinConsumed {
		return errors.New("set $EDITOR or pass -yes when the input is read from stdin")
	}

	fmt.Fprintf(stdout, "Edit %s, then press Enter to continue.\n", path)

	if _, err := bufio.NewReader(stdin).ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}
