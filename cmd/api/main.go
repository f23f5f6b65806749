package main

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"path/filepath"

	"prontuario/pkg/api/config"
	"prontuario/pkg/api/extract"
	"prontuario/pkg/api/note"
	"prontuario/pkg/api/sections"
	"prontuario/pkg/api/sessions"
	"prontuario/pkg/core/agent"
	"prontuario/pkg/core/prompt"
	"prontuario/pkg/core/store"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

var agentMgr *agent.Manager

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize Prompt Library
	prompt.RegisterDefaults()

	// Determine resources path (relative to executable or working directory)
	resourcesPath := "resources"
	if _, err := os.Stat(resourcesPath); os.IsNotExist(err) {
		// Try from executable directory
		exePath, _ := os.Executable()
		resourcesPath = filepath.Join(filepath.Dir(exePath), "resources")
	}
	if err := prompt.LoadFromDirectory(resourcesPath); err != nil {
		fmt.Printf("[WARNING] Failed to load prompt overrides: %v\n", err)
		fmt.Println("  Falling back to hardcoded prompts")
	} else {
		fmt.Printf("[PROMPT] Prompt library ready with %d prompts\n", prompt.Get().Count())
	}

	// Initialize manager from config
	configData, _ := ioutil.ReadFile("config/models.yaml")
	var agentCfg agent.Config
	yaml.Unmarshal(configData, &agentCfg)
	agentMgr = agent.NewManager(agentCfg)

	// Session storage is optional; without DATABASE_URL the app runs in memory
	var sessionRepo *store.SessionRepo
	if err := store.InitDB(context.Background()); err != nil {
		fmt.Printf("[WARNING] Session storage unavailable: %v\n", err)
	} else {
		sessionRepo = store.NewSessionRepo(store.GetPool())
		defer store.Close()
	}

	state := note.NewState()

	// Config endpoints
	configHandler := config.NewHandler(agentMgr)
	http.HandleFunc("/api/config", configHandler.HandleConfig)
	http.HandleFunc("/api/config/switch", configHandler.HandleSwitch)

	// Note endpoints
	noteHandler := note.NewHandler(state)
	http.HandleFunc("/api/note/render", noteHandler.HandleRender)
	http.HandleFunc("/api/note/preview", noteHandler.HandlePreview)
	http.HandleFunc("/api/note/field", noteHandler.HandleField)
	http.HandleFunc("/api/note/order", noteHandler.HandleOrder)
	http.HandleFunc("/api/note/reset", noteHandler.HandleReset)
	http.HandleFunc("/api/note/advance-day", noteHandler.HandleAdvanceDay)
	http.HandleFunc("/api/note/snapshot", noteHandler.HandleSnapshot)

	// Deterministic extraction endpoints
	extractHandler := extract.NewHandler(state)
	http.HandleFunc("/api/extract/labs", extractHandler.HandleLabs)
	http.HandleFunc("/api/extract/controls", extractHandler.HandleControls)
	http.HandleFunc("/api/extract/systems", extractHandler.HandleSystems)

	// Section agent endpoints
	sectionsHandler := sections.NewHandler(state, agentMgr)
	http.HandleFunc("/api/sections", sectionsHandler.HandleList)
	http.HandleFunc("/api/sections/run", sectionsHandler.HandleRun)
	http.HandleFunc("/api/sections/run-all", sectionsHandler.HandleRunAll)

	// Saved session endpoints
	sessionsHandler := sessions.NewHandler(state, sessionRepo)
	http.HandleFunc("/api/sessions", sessionsHandler.HandleList)
	http.HandleFunc("/api/sessions/save", sessionsHandler.HandleSave)
	http.HandleFunc("/api/sessions/load", sessionsHandler.HandleLoad)
	http.HandleFunc("/api/sessions/delete", sessionsHandler.HandleDelete)

	fmt.Println("API server starting on :8080...")
	fmt.Println("  - GET  /api/config")
	fmt.Println("  - POST /api/config/switch")
	fmt.Println("  - GET  /api/note/render")
	fmt.Println("  - GET  /api/note/preview")
	fmt.Println("  - GET/POST /api/note/field")
	fmt.Println("  - POST /api/note/order")
	fmt.Println("  - POST /api/note/reset")
	fmt.Println("  - POST /api/note/advance-day")
	fmt.Println("  - GET/POST /api/note/snapshot")
	fmt.Println("  - POST /api/extract/labs")
	fmt.Println("  - POST /api/extract/controls")
	fmt.Println("  - POST /api/extract/systems")
	fmt.Println("  - GET  /api/sections")
	fmt.Println("  - POST /api/sections/run")
	fmt.Println("  - POST /api/sections/run-all")
	fmt.Println("  - GET  /api/sessions")
	fmt.Println("  - POST /api/sessions/save")
	fmt.Println("  - POST /api/sessions/load")
	fmt.Println("  - POST /api/sessions/delete")

	// Use log.Fatal to print error and exit with code 1 if it fails (e.g. port in use)
	if err := http.ListenAndServe(":8080", nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
