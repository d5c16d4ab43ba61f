// Package main is the entry point for the healthego wellness companion CLI.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"google.golang.org/adk/model"
	"google.golang.org/genai"

	"github.com/Duggu05-coder/healthego/internal/config"
	"github.com/Duggu05-coder/healthego/internal/emotion"
	"github.com/Duggu05-coder/healthego/internal/memory"
	"github.com/Duggu05-coder/healthego/internal/models"
	"github.com/Duggu05-coder/healthego/internal/remedy"
	"github.com/Duggu05-coder/healthego/internal/responder"
	"github.com/Duggu05-coder/healthego/internal/session"
	"github.com/Duggu05-coder/healthego/internal/storage"
	"github.com/Duggu05-coder/healthego/internal/vision"
	"github.com/Duggu05-coder/healthego/internal/voice"
)

// app wires the conversation pipeline together. Optional members are nil when
// their configuration is absent; every turn path tolerates that.
type app struct {
	cfg       config.Config
	detector  *emotion.Detector
	selector  *remedy.Selector
	responder *responder.Responder
	manager   *session.Manager
	recall    *memory.Service
	vision    *vision.Analyzer
	voice     *voice.Handler
	speak     bool
}

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nTake care of yourself. Goodbye!")
		cancel()
		// The REPL may be blocked on stdin; give it a moment, then exit.
		time.Sleep(500 * time.Millisecond)
		os.Exit(0)
	}()

	var store *storage.Store
	if cfg.DatabaseURL != "" {
		var err error
		store, err = storage.NewStore(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer store.Close()
	} else {
		slog.Warn("DATABASE_URL not set, running without persistence")
	}

	a := &app{
		cfg:      cfg,
		detector: emotion.NewDetector(),
		selector: remedy.NewSelector(),
	}

	llm := buildLLM(ctx, cfg)
	a.responder = responder.New(llm, a.selector)

	var sessionStore session.Store
	if store != nil {
		sessionStore = store
	}
	if cfg.SessionID != "" {
		manager, err := session.Resume(ctx, sessionStore, cfg.SessionID)
		if err != nil {
			log.Fatalf("failed to resume session %s: %v", cfg.SessionID, err)
		}
		a.manager = manager
	} else {
		a.manager = session.NewManager(ctx, sessionStore)
	}

	if cfg.GeminiAPIKey != "" && store != nil {
		embedder, err := memory.NewEmbedder(ctx, cfg.GeminiAPIKey, cfg.EmbeddingModel)
		if err != nil {
			slog.Warn("failed to create embedder, recall disabled", "error", err.Error())
		} else {
			a.recall = memory.NewService(embedder, store, cfg.TopK, cfg.SimilarityThreshold)
		}
	}

	if cfg.GeminiAPIKey != "" {
		clientCfg := &genai.ClientConfig{APIKey: cfg.GeminiAPIKey, Backend: genai.BackendGeminiAPI}
		analyzer, err := vision.NewAnalyzer(ctx, cfg.VisionModel, clientCfg)
		if err != nil {
			slog.Warn("failed to create image analyzer", "error", err.Error())
		} else {
			a.vision = analyzer
		}
		handler, err := voice.NewHandler(ctx, cfg.LLMModel, cfg.SpeechModel, clientCfg)
		if err != nil {
			slog.Warn("failed to create voice handler", "error", err.Error())
		} else {
			a.voice = handler
		}
	}

	a.run(ctx)
}

// buildLLM picks the reply model by provider. Missing keys degrade to nil,
// which the responder turns into static fallback replies.
func buildLLM(ctx context.Context, cfg config.Config) model.LLM {
	var (
		llm model.LLM
		err error
	)
	switch cfg.LLMProvider {
	case "grok":
		if cfg.XAIAPIKey == "" {
			slog.Warn("XAI_API_KEY not set, replies use static fallbacks")
			return nil
		}
		llm, err = models.NewGrokModel(ctx, cfg.LLMModel, &genai.ClientConfig{APIKey: cfg.XAIAPIKey})
	case "openrouter":
		if cfg.OpenRouterAPIKey == "" {
			slog.Warn("OPENROUTER_API_KEY not set, replies use static fallbacks")
			return nil
		}
		llm, err = models.NewOpenRouterModel(ctx, cfg.LLMModel, &genai.ClientConfig{APIKey: cfg.OpenRouterAPIKey})
	default:
		if cfg.GeminiAPIKey == "" {
			slog.Warn("GEMINI_API_KEY not set, replies use static fallbacks")
			return nil
		}
		llm, err = models.NewGeminiModel(ctx, cfg.LLMModel, &genai.ClientConfig{
			APIKey:  cfg.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
	}
	if err != nil {
		slog.Warn("failed to create reply model, replies use static fallbacks", "provider", cfg.LLMProvider, "error", err.Error())
		return nil
	}
	return llm
}

func (a *app) run(ctx context.Context) {
	fmt.Println("🧠 healthego - your wellness companion")
	fmt.Printf("Session %s. Type /help for commands, /quit to exit.\n\n", a.manager.ID())

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 64*1024), 64*1024)

	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			if done := a.command(ctx, line); done {
				return
			}
			continue
		}

		a.turn(ctx, line, "")
	}
}

// command dispatches one slash command; it reports true when the REPL should
// exit.
func (a *app) command(ctx context.Context, line string) bool {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "/quit", "/exit":
		fmt.Println("Take care of yourself. Goodbye!")
		return true
	case "/help":
		a.printHelp()
	case "/stats":
		a.printStats()
	case "/insights":
		a.printInsights()
	case "/remedy":
		a.printRemedy(arg)
	case "/coping":
		fmt.Println(a.responder.CopingStrategies(ctx, a.currentEmotion(), arg))
	case "/export":
		a.exportSession()
	case "/clear":
		a.manager.Clear(ctx)
		fmt.Printf("Session cleared. New session %s started.\n", a.manager.ID())
	case "/say":
		a.speak = !a.speak
		fmt.Printf("Spoken replies: %v\n", a.speak)
	case "/image":
		a.imageTurn(ctx, arg)
	case "/voice":
		a.voiceTurn(ctx, arg)
	default:
		fmt.Println("Unknown command. Type /help for the list.")
	}
	return false
}

// turn runs the full conversation pipeline for one user message.
func (a *app) turn(ctx context.Context, text, audioPath string) {
	fused := a.detector.Detect(text)

	userMsg := a.manager.AddMessage(ctx, session.RoleUser, text, session.AddOptions{
		Emotion:    fused.Label,
		Confidence: fused.Confidence,
		AudioPath:  audioPath,
	})

	var recalled []memory.Recalled
	if a.recall != nil {
		if err := a.recall.Remember(ctx, userMsg.ID, text); err != nil {
			slog.Warn("failed to remember message", "error", err.Error())
		}
		var err error
		recalled, err = a.recall.Recall(ctx, a.manager.ID(), text)
		if err != nil {
			slog.Warn("failed to recall similar moments", "error", err.Error())
		}
	}

	history := a.manager.Context(a.cfg.HistoryLimit)
	// Exclude the turn just appended; the prompt carries it separately.
	if n := len(history); n > 0 && history[n-1].ID == userMsg.ID {
		history = history[:n-1]
	}

	reply := a.responder.Generate(ctx, text, fused.Label, history, recalled)
	a.manager.AddMessage(ctx, session.RoleAssistant, reply, session.AddOptions{})

	fmt.Printf("\n[emotion: %s, confidence: %.2f]\n", fused.Label, fused.Confidence)
	fmt.Printf("healthego> %s\n\n", reply)

	if a.speak {
		a.speakReply(ctx, reply)
	}
}

func (a *app) imageTurn(ctx context.Context, path string) {
	if a.vision == nil {
		fmt.Println("Image analysis needs GEMINI_API_KEY to be set.")
		return
	}
	if path == "" {
		fmt.Println("Usage: /image <path>")
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Could not read image: %v\n", err)
		return
	}

	desc := a.vision.Describe(ctx, data, imageMIME(path))
	fmt.Printf("\n[image emotion: %s, confidence: %s]\n", desc.Emotion, desc.Confidence)

	text := fmt.Sprintf("I shared an image. %s", desc.Caption)
	userMsg := a.manager.AddMessage(ctx, session.RoleUser, text, session.AddOptions{
		Emotion:    desc.Emotion,
		Confidence: visionConfidence(desc.Confidence),
	})

	history := a.manager.Context(a.cfg.HistoryLimit)
	if n := len(history); n > 0 && history[n-1].ID == userMsg.ID {
		history = history[:n-1]
	}

	reply := a.responder.Generate(ctx, text, desc.Emotion, history, nil)
	a.manager.AddMessage(ctx, session.RoleAssistant, reply, session.AddOptions{})
	fmt.Printf("healthego> %s\n\n", reply)
}

func (a *app) voiceTurn(ctx context.Context, path string) {
	if a.voice == nil {
		fmt.Println("Voice input needs GEMINI_API_KEY to be set.")
		return
	}
	if path == "" {
		fmt.Println("Usage: /voice <path>")
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Could not read audio: %v\n", err)
		return
	}

	text, err := a.voice.Transcribe(ctx, data, audioMIME(path))
	if err != nil {
		fmt.Printf("Could not understand the audio: %v\n", err)
		return
	}

	fmt.Printf("you (voice)> %s\n", text)
	a.turn(ctx, text, path)
}

func (a *app) speakReply(ctx context.Context, reply string) {
	if a.voice == nil {
		fmt.Println("Spoken replies need GEMINI_API_KEY to be set.")
		return
	}
	audio, err := a.voice.Synthesize(ctx, reply)
	if err != nil {
		slog.Warn("failed to synthesize reply", "error", err.Error())
		return
	}
	f, err := os.CreateTemp("", "healthego-reply-*.wav")
	if err != nil {
		slog.Warn("failed to create audio file", "error", err.Error())
		return
	}
	defer f.Close()
	if _, err := f.Write(audio); err != nil {
		slog.Warn("failed to write audio file", "error", err.Error())
		return
	}
	fmt.Printf("[spoken reply saved to %s]\n", f.Name())
}

func (a *app) printHelp() {
	fmt.Println(`Commands:
  /stats            session statistics
  /insights         emotional pattern insights
  /remedy [emotion] full remedy package (defaults to your current emotion)
  /coping [context] AI coping strategies for your current emotion
  /image <path>     share an image for emotional analysis
  /voice <path>     send an audio message
  /say              toggle spoken replies
  /export           save the session transcript as JSON
  /clear            wipe this session and start fresh
  /quit             exit`)
}

func (a *app) printStats() {
	stats := a.manager.Stats()
	fmt.Printf("Session %s\n", stats.SessionID)
	fmt.Printf("  duration:          %.1f minutes\n", stats.DurationMinutes)
	fmt.Printf("  messages:          %d (%d from you, %d replies)\n", stats.MessageCount, stats.UserMessages, stats.AssistantMessages)
	fmt.Printf("  emotions detected: %d (%d unique)\n", stats.EmotionsDetected, stats.UniqueEmotions)
}

func (a *app) printInsights() {
	report := a.manager.Insights()
	for _, line := range report.Insights {
		fmt.Printf("• %s\n", line)
	}
}

func (a *app) printRemedy(arg string) {
	label := a.currentEmotion()
	if arg != "" {
		parsed := emotion.ParseLabel(arg)
		if parsed == emotion.Neutral && !strings.EqualFold(arg, "neutral") {
			fmt.Printf("Unknown emotion %q, showing neutral techniques.\n", arg)
		}
		label = parsed
	}
	fmt.Println(a.selector.FormatResponse(label))
}

func (a *app) exportSession() {
	export := a.manager.Export()
	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		fmt.Printf("Could not export session: %v\n", err)
		return
	}
	name := fmt.Sprintf("healthego_session_%s.json", export.StartTime.Format("20060102_150405"))
	if err := os.WriteFile(name, data, 0o644); err != nil {
		fmt.Printf("Could not write export file: %v\n", err)
		return
	}
	fmt.Printf("Session exported to %s\n", name)
}

func (a *app) currentEmotion() emotion.Label {
	if label := a.manager.CurrentEmotion(); label != "" {
		return label
	}
	return emotion.Neutral
}

func imageMIME(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	}
	return "image/jpeg"
}

func audioMIME(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return "audio/wav"
	case ".mp3":
		return "audio/mp3"
	case ".ogg":
		return "audio/ogg"
	case ".flac":
		return "audio/flac"
	case ".m4a", ".aac":
		return "audio/aac"
	}
	return "audio/wav"
}

// visionConfidence maps the analyzer's coarse grade onto the detector's
// numeric scale.
func visionConfidence(c vision.Confidence) float64 {
	switch c {
	case vision.ConfidenceHigh:
		return 0.9
	case vision.ConfidenceLow:
		return 0.3
	}
	return 0.6
}
