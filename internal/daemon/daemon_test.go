package daemon

import (
	"context"
	"net/http"
	"testing"
	"time"

	"scribe/internal/api"
	"scribe/internal/testsupport"
)

func TestDaemonStartServesAndStops(t *testing.T) {
	d := testDaemon(t, testsupport.NewConfig(t), &fakeCaptions{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := d.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer d.Stop()

	addr := d.server.listener.Addr().String()
	client := api.NewClient(addr, api.WithHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	health, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("Health over TCP: %v", err)
	}
	if health.Status != "healthy" {
		t.Fatalf("unexpected health %+v", health)
	}

	d.Stop()
	if d.Status(context.Background()).Running {
		t.Fatal("daemon should report not running after Stop")
	}
}

func TestDaemonSecondInstanceRefused(t *testing.T) {
	first := testDaemon(t, testsupport.NewConfig(t), &fakeCaptions{})

	ctx := context.Background()
	if err := first.Start(ctx); err != nil {
		t.Fatalf("Start first: %v", err)
	}
	defer first.Stop()

	// Same config, so the second instance contends for the same lock file.
	second, err := New(first.cfg, nil, first.service, first.metadata, first.capabilities)
	if err != nil {
		t.Fatalf("New second daemon: %v", err)
	}
	if err := second.Start(ctx); err == nil {
		second.Stop()
		t.Fatal("expected second instance to be refused")
	}
}

func TestStatusReportsCapabilitiesAndDependencies(t *testing.T) {
	d := testDaemon(t, nil, &fakeCaptions{})

	status := d.Status(context.Background())
	if status.Capabilities.CaptionsProvider != "innertube" {
		t.Fatalf("unexpected capabilities %+v", status.Capabilities)
	}
	if len(status.Dependencies) == 0 {
		t.Fatal("expected dependency report")
	}
	if status.LockFilePath == "" {
		t.Fatal("expected lock file path")
	}
}

func TestFromConfigWiresProviders(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithDataAPIKey("test-key"))
	cfg.YouTube.YtDlpEnabled = true

	d, err := FromConfig(cfg, nil)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	providers := d.capabilities.MetadataProviders
	want := []string{"data-api", "oembed", "yt-dlp"}
	if len(providers) != len(want) {
		t.Fatalf("unexpected providers %v", providers)
	}
	for i, name := range want {
		if providers[i] != name {
			t.Fatalf("provider %d = %q, want %q", i, providers[i], name)
		}
	}
}
