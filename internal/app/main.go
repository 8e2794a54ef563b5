package app

import (
	"flag"
	"io"
	"log"
	"os"

	"QuadNormalMap/internal/params"
	"QuadNormalMap/shared/config"
)

// cliFlags guarda as opções de linha de comando. Valores zero não mexem no
// config carregado.
type cliFlags struct {
	configPath      string
	width           int
	height          int
	vertPath        string
	fragPath        string
	diffuse         string
	normalMap       string
	statsDB         string
	logFile         string
	noNormalMapping bool
}

// parseFlags lê args num FlagSet próprio.
func parseFlags(name string, args []string) (*cliFlags, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&f.configPath, "config", config.DefaultPath(), "Arquivo de configuração JSON")
	fs.IntVar(&f.width, "width", 0, "Largura da janela")
	fs.IntVar(&f.height, "height", 0, "Altura da janela")
	fs.StringVar(&f.vertPath, "vert", "", "Vertex shader (vazio = embutido)")
	fs.StringVar(&f.fragPath, "frag", "", "Fragment shader (vazio = embutido)")
	fs.StringVar(&f.diffuse, "diffuse", "", "Textura difusa")
	fs.StringVar(&f.normalMap, "normal", "", "Normal map")
	fs.StringVar(&f.statsDB, "stats", "", "Banco SQLite para o histórico de sessões")
	fs.StringVar(&f.logFile, "log", "", "Arquivo de log (além do terminal)")
	fs.BoolVar(&f.noNormalMapping, "no-normal-mapping", false, "Iniciar com normal mapping desligado (variante toggle)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// apply sobrescreve o config salvo com as flags informadas.
// -vert e -frag andam juntos: informar só um deixa o outro vazio e
// Config.Validate rejeita.
func (f *cliFlags) apply(cfg *config.Config) {
	if f.width > 0 {
		cfg.WindowWidth = int32(f.width)
	}
	if f.height > 0 {
		cfg.WindowHeight = int32(f.height)
	}
	if f.vertPath != "" || f.fragPath != "" {
		cfg.VertexShaderPath = f.vertPath
		cfg.FragmentShaderPath = f.fragPath
	}
	if f.diffuse != "" {
		cfg.DiffuseTexturePath = f.diffuse
	}
	if f.normalMap != "" {
		cfg.NormalMapPath = f.normalMap
	}
	if f.statsDB != "" {
		cfg.StatsDB = f.statsDB
	}
	if f.logFile != "" {
		cfg.LogFile = f.logFile
	}
	if f.noNormalMapping {
		cfg.NormalMapping = false
	}
}

// Main é o ponto de entrada compartilhado das duas demos: lê flags e
// configuração, prepara o log e roda a aplicação. Não retorna em caso de erro.
func Main(variant params.Variant, banner string) {
	log.SetFlags(log.Ltime | log.Lshortfile)

	flags, err := parseFlags(os.Args[0], os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		log.Fatalf("[Config] %v", err)
	}
	cfg.Variant = variant
	flags.apply(cfg)

	// Log em arquivo espelhado no terminal
	var logOut io.Closer
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Printf("[App] AVISO: não foi possível abrir %s: %v", cfg.LogFile, err)
		} else {
			logOut = f
			log.SetOutput(io.MultiWriter(os.Stderr, f))
		}
	}

	log.Println(banner)

	os.Exit(finish(New(cfg).Run(), logOut))
}

// finish registra o erro da execução, fecha o log espelhado e devolve o
// código de saída. os.Exit pula defers, então o arquivo é fechado aqui.
func finish(runErr error, logOut io.Closer) int {
	code := 0
	if runErr != nil {
		log.Printf("[App] %v", runErr)
		code = 1
	}
	if logOut != nil {
		log.SetOutput(os.Stderr)
		if err := logOut.Close(); err != nil {
			log.Printf("[App] Erro ao fechar log: %v", err)
		}
	}
	return code
}
