package whisper

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"testing"
)

func TestArgsDefaultLanguage(t *testing.T) {
	svc := NewService(Config{}, nil)

	got := svc.Args("/videos/b.mkv")
	want := []string{"--model", "medium", "--device", "cpu", "/videos/b.mkv", "--language", "en"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("args mismatch:\n got %v\nwant %v", got, want)
	}
}

func TestArgsAutoLanguageOmitsHint(t *testing.T) {
	svc := NewService(Config{AutoLanguage: true}, nil)

	got := svc.Args("/videos/b.mkv")
	want := []string{"--model", "medium", "--device", "cpu", "/videos/b.mkv"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("args mismatch:\n got %v\nwant %v", got, want)
	}
}

func TestArgsConfigOverrides(t *testing.T) {
	svc := NewService(Config{Model: "small", Language: "de"}, nil)

	got := svc.Args("/v/a.mp4")
	want := []string{"--model", "small", "--device", "cpu", "/v/a.mp4", "--language", "de"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("args mismatch:\n got %v\nwant %v", got, want)
	}
}

func TestTranscribeUsesRunner(t *testing.T) {
	svc := NewService(Config{Binary: "fake-engine"}, nil)

	var gotName string
	var gotArgs []string
	svc.WithCommandRunner(func(_ context.Context, name string, args ...string) error {
		gotName = name
		gotArgs = args
		return nil
	})

	if err := svc.Transcribe(context.Background(), "/videos/b.mkv"); err != nil {
		t.Fatal(err)
	}
	if gotName != "fake-engine" {
		t.Fatalf("unexpected binary %q", gotName)
	}
	if !reflect.DeepEqual(gotArgs, svc.Args("/videos/b.mkv")) {
		t.Fatalf("unexpected args %v", gotArgs)
	}
}

func TestTranscribeRunnerFailureNamesFile(t *testing.T) {
	svc := NewService(Config{}, nil)
	svc.WithCommandRunner(func(context.Context, string, ...string) error {
		return errors.New("exit status 1")
	})

	err := svc.Transcribe(context.Background(), "/videos/b.mkv")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); !strings.Contains(got, "/videos/b.mkv") {
		t.Fatalf("error should name the file: %q", got)
	}
}

func TestTranscribeVerboseLogsCommandLine(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	svc := NewService(Config{Verbose: true}, logger)
	svc.WithCommandRunner(func(context.Context, string, ...string) error {
		return nil
	})

	if err := svc.Transcribe(context.Background(), "/videos/b.mkv"); err != nil {
		t.Fatal(err)
	}
	want := "whisper --model medium --device cpu /videos/b.mkv --language en"
	if !strings.Contains(buf.String(), want) {
		t.Fatalf("command line not logged:\nwant %q\n got %q", want, buf.String())
	}
}

func TestTranscribeQuietLogsNoCommandLine(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	svc := NewService(Config{}, logger)
	svc.WithCommandRunner(func(context.Context, string, ...string) error {
		return nil
	})

	if err := svc.Transcribe(context.Background(), "/videos/b.mkv"); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "--model") {
		t.Fatalf("quiet mode should not log the command line: %q", buf.String())
	}
}

func TestTranscribeEmptyPath(t *testing.T) {
	svc := NewService(Config{}, nil)
	if err := svc.Transcribe(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestTail(t *testing.T) {
	if got := tail(""); got != "(no output)" {
		t.Fatalf("unexpected empty tail: %q", got)
	}
	if got := tail("a\nb\nc\nd\ne\nf\ng"); got != "c | d | e | f | g" {
		t.Fatalf("unexpected tail: %q", got)
	}
}
