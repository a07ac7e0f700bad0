package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"gennova/internal/config"
	"gennova/internal/db"
	"gennova/internal/domain"
	"gennova/internal/llm"
	"gennova/internal/repository"
	"gennova/internal/service"
	"gennova/internal/view"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	profileRepo := repository.NewPgProfileRepository(pool)
	kitRepo := repository.NewPgKitRepository(pool)
	phenotypeRepo := repository.NewPgPhenotypeRepository(pool)
	genotypeRepo := repository.NewPgGenotypeRepository(pool)
	articleRepo := repository.NewPgArticleRepository(pool)
	traitRepo := repository.NewPgTraitRepository(pool)

	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMEmbedModel, logger)

	mode := view.ParseDataMode(cfg.DataMode)
	reportSvc := service.NewReportService(logger, profileRepo, kitRepo, phenotypeRepo, mode)
	geneticsSvc := service.NewGeneticsService(profileRepo, phenotypeRepo, genotypeRepo, traitRepo)
	articleSvc := service.NewArticleService(logger, articleRepo, llmClient)
	assistantSvc := service.NewAssistantService(logger, llmClient, reportSvc, nil, cfg.LLMAPIKey != "")
	kitSvc := service.NewKitService(logger, kitRepo, profileRepo, userRepo, nil)

	nav := view.NewController()
	nav.SetPhase(view.AuthLoading)

	user, err := ensureUser(ctx, userRepo, "app_test@example.com")
	if err != nil {
		log.Fatal(err)
	}
	nav.SetPhase(view.AuthSignedIn)

	for {
		fmt.Println("===== Gennova =====")
		profiles, err := reportSvc.ListProfiles(ctx, user.ID)
		if err != nil {
			log.Fatalf("listar perfiles: %v", err)
		}
		if len(profiles) == 0 {
			fmt.Println("No hay perfiles. Crea uno nuevo.")
			newProfile, err := createProfileFlow(ctx, reader, profileRepo, user.ID)
			if err != nil {
				log.Fatalf("crear perfil: %v", err)
			}
			profiles = append(profiles, *newProfile)
		}

		fmt.Println("Perfiles disponibles:")
		for i, p := range profiles {
			fmt.Printf("[%d] %s (ID: %s)\n", i+1, p.Name, p.ID)
		}
		fmt.Println("[C] Crear nuevo perfil")
		fmt.Print("Selecciona un perfil: ")
		choice, _ := reader.ReadString('\n')
		choice = strings.TrimSpace(choice)

		var selected domain.Profile
		if strings.EqualFold(choice, "C") {
			newProfile, err := createProfileFlow(ctx, reader, profileRepo, user.ID)
			if err != nil {
				log.Fatalf("crear perfil: %v", err)
			}
			selected = *newProfile
		} else {
			idx, err := strconv.Atoi(choice)
			if err != nil || idx < 1 || idx > len(profiles) {
				fmt.Println("Seleccion invalida.")
				continue
			}
			selected = profiles[idx-1]
		}
		nav.SelectProfile(selected.ID)

		kit, err := reportSvc.ActiveKit(ctx, user.ID, selected.ID)
		if err != nil {
			log.Fatalf("cargar kit: %v", err)
		}
		if kit == nil {
			fmt.Println("\nEste perfil todavia no tiene un kit vinculado.")
			if err := linkKitFlow(ctx, reader, nav, kitSvc, selected.ID); err != nil {
				fmt.Printf("Error vinculando kit: %v\n", err)
				continue
			}
		}

		if err := runMenu(ctx, reader, nav, user, selected, reportSvc, geneticsSvc, articleSvc, assistantSvc); err != nil {
			log.Printf("error en menu: %v", err)
		}
	}
}

func runMenu(
	ctx context.Context,
	reader *bufio.Reader,
	nav *view.Controller,
	user domain.User,
	profile domain.Profile,
	reportSvc *service.ReportService,
	geneticsSvc *service.GeneticsService,
	articleSvc *service.ArticleService,
	assistantSvc *service.AssistantService,
) error {
	for {
		fmt.Printf("\n--- Perfil: %s ---\n", strings.ToUpper(profile.Name))
		fmt.Println("[1] Ver reporte")
		fmt.Println("[2] Detalle genetico de un rasgo")
		fmt.Println("[3] Articulos")
		fmt.Println("[4] Chatear con el asistente")
		fmt.Println("[5] Cambiar perfil")
		fmt.Println("[6] Salir")
		fmt.Print("Selecciona una opcion: ")

		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		switch line {
		case "1":
			nav.SelectTab(view.TabReports)
			if err := showReport(ctx, nav, user, profile, reportSvc); err != nil {
				fmt.Printf("Error cargando reporte: %v\n", err)
			}
		case "2":
			if err := showGenetics(ctx, reader, nav, user, profile, geneticsSvc); err != nil {
				fmt.Printf("Error cargando genetica: %v\n", err)
			}
		case "3":
			nav.SelectTab(view.TabAlerts)
			if err := articlesFlow(ctx, reader, nav, articleSvc); err != nil {
				fmt.Printf("Error cargando articulos: %v\n", err)
			}
		case "4":
			nav.SelectTab(view.TabProfile)
			if err := chatFlow(ctx, reader, user, profile, assistantSvc); err != nil {
				fmt.Printf("Error en chat: %v\n", err)
			}
		case "5":
			nav.SelectTab(view.TabHome)
			return nil
		case "6":
			os.Exit(0)
		default:
			fmt.Println("Opcion invalida.")
		}
	}
}

// stdinScanner simula el escaner de codigo de barras leyendo de la terminal.
type stdinScanner struct {
	reader *bufio.Reader
}

func (s stdinScanner) Scan(_ context.Context) (string, error) {
	fmt.Print("Apunta la camara al codigo (o escribe el codigo): ")
	line, err := s.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", errors.New("no se detecto ningun codigo")
	}
	return line, nil
}

func linkKitFlow(ctx context.Context, reader *bufio.Reader, nav *view.Controller, kitSvc *service.KitService, profileID string) error {
	nav.StartLinking()
	flow := view.NewLinkFlow(nav.DismissLinking, nav.FinishLinking)

	fmt.Println("\n--- Vincular kit de ADN ---")
	if err := flow.ScanCode(ctx, stdinScanner{reader: reader}); err != nil {
		fmt.Printf("Escaneo fallido (%v); ingresa el codigo manualmente.\n", err)
		fmt.Print("Codigo del kit: ")
		code, _ := reader.ReadString('\n')
		flow.EnterManually(strings.TrimSpace(code))
	}
	if flow.Step() != view.StepRegister {
		flow.Dismiss()
		return errors.New("no se pudo capturar el codigo del kit")
	}

	form := view.OwnerForm{}
	fmt.Print("Fecha de nacimiento (YYYY-MM-DD, opcional): ")
	birth, _ := reader.ReadString('\n')
	if t, err := time.Parse("2006-01-02", strings.TrimSpace(birth)); err == nil {
		form.BirthDate = &t
	}
	fmt.Print("Genero (opcional): ")
	gender, _ := reader.ReadString('\n')
	form.Gender = strings.TrimSpace(gender)
	flow.SubmitRegister(form)

	if _, err := kitSvc.Activate(ctx, profileID, flow.Barcode()); err != nil {
		flow.Dismiss()
		return err
	}
	flow.Finish()
	fmt.Println("Kit vinculado. El reporte aparecera cuando el laboratorio termine.")
	return nil
}

func showReport(ctx context.Context, nav *view.Controller, user domain.User, profile domain.Profile, reportSvc *service.ReportService) error {
	token := nav.BeginFetch()
	report, err := reportSvc.BuildReport(ctx, user.ID, profile.ID)
	if err != nil {
		return err
	}
	if !nav.Accept(token) {
		return nil
	}

	fmt.Println("\n--- Progreso del kit ---")
	for _, step := range report.Timeline {
		marker := " "
		if step.Done {
			marker = "x"
		} else if step.Current {
			marker = ">"
		}
		fmt.Printf("[%s] %s\n", marker, step.Title)
	}

	if len(report.Radar) > 0 {
		fmt.Println("\n--- Radar de talentos ---")
		for _, p := range report.Radar {
			fmt.Printf("%-20s %3d\n", p.Label, p.Value)
		}
	}

	if report.TopTrait != nil {
		fmt.Printf("\nRasgo destacado: %s (%s, %d)\n", report.TopTrait.Name, report.TopTrait.Level, report.TopTrait.Score)
	}
	for _, card := range report.Others {
		fmt.Printf("  - %s: %s (%d)\n", card.Name, card.Level, card.Score)
	}
	if len(report.Cards) == 0 {
		fmt.Println("\nTodavia no hay resultados para este perfil.")
	}
	return nil
}

func showGenetics(ctx context.Context, reader *bufio.Reader, nav *view.Controller, user domain.User, profile domain.Profile, geneticsSvc *service.GeneticsService) error {
	fmt.Print("Nombre del rasgo: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("nombre vacio")
	}
	nav.OpenSubTrait(name)
	defer nav.Back()

	detail, err := geneticsSvc.TraitDetail(ctx, user.ID, profile.ID, name)
	if err != nil {
		return err
	}

	fmt.Printf("\n%s - %s (%s)\n", detail.Trait.Name, detail.ResultLevel, detail.GaugeBand)
	if detail.Description != "" {
		fmt.Println(detail.Description)
	}
	fmt.Println("\nGen      SNP          Genotipo  Estado")
	for _, row := range detail.Genes {
		fmt.Printf("%-8s %-12s %-9s %s\n", row.Gene, row.RsID, row.Genotype, row.Status)
	}
	return nil
}

func articlesFlow(ctx context.Context, reader *bufio.Reader, nav *view.Controller, articleSvc *service.ArticleService) error {
	articles, err := articleSvc.List(ctx)
	if err != nil {
		return err
	}
	if len(articles) == 0 {
		fmt.Println("No hay articulos todavia.")
		return nil
	}
	for i, a := range articles {
		fmt.Printf("[%d] %s\n", i+1, a.Title)
	}
	fmt.Print("Selecciona un articulo (enter para volver): ")
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	idx, err := strconv.Atoi(line)
	if err != nil || idx < 1 || idx > len(articles) {
		return errors.New("seleccion invalida")
	}

	selected := articles[idx-1]
	nav.OpenArticle(selected.ID)
	defer nav.Back()

	detail, err := articleSvc.Detail(ctx, selected.ID)
	if err != nil {
		return err
	}

	fmt.Printf("\n%s\n", detail.Article.Title)
	if detail.Article.Subtitle != "" {
		fmt.Println(detail.Article.Subtitle)
	}
	for _, s := range detail.Sections {
		switch s.Kind {
		case domain.SectionHeading:
			fmt.Printf("\n## %s\n", s.Text)
		case domain.SectionList:
			for _, item := range s.Items {
				fmt.Printf("  * %s\n", item)
			}
		default:
			fmt.Println(s.Text)
		}
	}

	av := view.NewArticleView(detail.Article, detail.Sections, detail.Activities)
	if len(av.Activities) > 0 {
		fmt.Println("\nActividades sugeridas:")
		for _, item := range av.Activities {
			marker := " "
			if item.Checked {
				marker = "x"
			}
			fmt.Printf("[%s] %s\n", marker, item.Text)
		}
	}

	related, err := articleSvc.Related(ctx, selected.ID)
	if err == nil && len(related) > 0 {
		fmt.Println("\nRelacionados:")
		for _, r := range related {
			fmt.Printf("  - %s\n", r.Title)
		}
	}
	return nil
}

// assistantGateway adapta el servicio del asistente a la sesion de chat.
type assistantGateway struct {
	svc       *service.AssistantService
	user      domain.User
	profileID string
}

func (g assistantGateway) Reply(ctx context.Context, userMessage string) (string, error) {
	return g.svc.Chat(ctx, g.user, g.profileID, userMessage)
}

func chatFlow(ctx context.Context, reader *bufio.Reader, user domain.User, profile domain.Profile, assistantSvc *service.AssistantService) error {
	gateway := assistantGateway{svc: assistantSvc, user: user, profileID: profile.ID}
	session := view.NewChatSession(gateway, user.DisplayName)

	for _, msg := range session.Messages() {
		fmt.Printf("Gennova > %s\n", msg.Text)
	}

	fmt.Println("---- Modo Chat (escribe 'salir' para terminar) ----")
	for {
		fmt.Print("Tu > ")
		text, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("leer input: %w", err)
		}
		text = strings.TrimSpace(text)
		if strings.EqualFold(text, "salir") || strings.EqualFold(text, "exit") {
			return nil
		}

		before := len(session.Messages())
		session.Send(ctx, text)
		for _, msg := range session.Messages()[before:] {
			if msg.Role == domain.RoleAssistant {
				fmt.Printf("Gennova > %s\n", msg.Text)
			}
		}
	}
}

func ensureUser(ctx context.Context, repo repository.UserRepository, emailAddr string) (domain.User, error) {
	user, err := repo.GetByEmail(ctx, emailAddr)
	if err == nil {
		return user, nil
	}

	now := time.Now().UTC()
	user = domain.User{
		ID:          uuid.NewString(),
		Email:       emailAddr,
		DisplayName: "Invitado",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := repo.Create(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func createProfileFlow(ctx context.Context, reader *bufio.Reader, repo repository.ProfileRepository, userID string) (*domain.Profile, error) {
	fmt.Print("Nombre del perfil: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("nombre vacio")
	}

	profile := domain.Profile{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
