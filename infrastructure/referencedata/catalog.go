package referencedata

import (
	_ "embed"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/tradelite-api/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

type Billing struct {
	Plans          []domain.Plan          `yaml:"plans"`
	MonthlyAmount  float64                `yaml:"monthly_amount"`
	PaymentMethods []domain.PaymentMethod `yaml:"payment_methods"`
	Invoices       []domain.Invoice       `yaml:"invoices"`
}

type Manager struct {
	NotificationTemplates []domain.NotificationTemplate `yaml:"notification_templates"`
	PendingReasons        []string                      `yaml:"pending_reasons"`
	PriceProducts         []string                      `yaml:"price_products"`
	PriceJustifications   []string                      `yaml:"price_justifications"`
	ProfileProducts       []domain.CatalogProduct       `yaml:"profile_products"`
	ProductHistory        []domain.ProductHistory       `yaml:"product_history"`
}

type Mentor struct {
	Stores                []string                     `yaml:"stores"`
	Issues                []domain.IssueCategory       `yaml:"issues"`
	Recommendations       []domain.Recommendation      `yaml:"recommendations"`
	PhotoInsights         []string                     `yaml:"photo_insights"`
	Alerts                []domain.AlertTemplate       `yaml:"alerts"`
	ReportRecommendations domain.ReportRecommendations `yaml:"report_recommendations"`
}

type Promoter struct {
	Products              []domain.CatalogProduct       `yaml:"products"`
	NotificationTemplates []domain.NotificationTemplate `yaml:"notification_templates"`
	FeedbackMessages      []string                      `yaml:"feedback_messages"`
	TrainingMaterials     domain.TrainingMaterials      `yaml:"training_materials"`
}

type Support struct {
	FAQ          []domain.FAQItem                `yaml:"faq"`
	ErrorCodes   map[string]domain.ErrorCodeInfo `yaml:"error_codes"`
	BotResponses []string                        `yaml:"bot_responses"`
}

// Catalog reúne os dados fixos de referência da plataforma. É somente leitura
// depois de carregado e pode ser compartilhado entre goroutines.
type Catalog struct {
	Users       []domain.Credential `yaml:"users"`
	Billing     Billing             `yaml:"billing"`
	Categories  []string            `yaml:"categories"`
	Brands      []string            `yaml:"brands"`
	AdminStores []string            `yaml:"admin_stores"`
	FieldStores []string            `yaml:"field_stores"`
	Promoters   []domain.Promoter   `yaml:"promoters"`
	Manager     Manager             `yaml:"manager"`
	Mentor      Mentor              `yaml:"mentor"`
	Promoter    Promoter            `yaml:"promoter"`
	Support     Support             `yaml:"support"`
}

// Load lê o catálogo de path ou, com path vazio, o catálogo embutido no binário
func Load(path string) (*Catalog, error) {
	raw := embeddedCatalog
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao ler catálogo de referência %s", path)
		}
		raw = content
	}

	return Parse(raw)
}

func Parse(raw []byte) (*Catalog, error) {
	catalog := &Catalog{}
	if err := yaml.Unmarshal(raw, catalog); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar catálogo de referência")
	}

	if err := catalog.validate(); err != nil {
		return nil, err
	}

	return catalog, nil
}

// Default devolve o catálogo embutido. Entra em pânico se ele estiver corrompido,
// o que só acontece com um binário gerado a partir de um YAML inválido.
func Default() *Catalog {
	catalog, err := Parse(embeddedCatalog)
	if err != nil {
		panic(err)
	}
	return catalog
}

func (c *Catalog) validate() error {
	if len(c.Users) == 0 {
		return errors.New("catálogo sem usuários")
	}

	seen := make(map[string]struct{}, len(c.Users))
	for _, user := range c.Users {
		email := strings.ToLower(strings.TrimSpace(user.Email))
		if _, dup := seen[email]; dup {
			return errors.Errorf("email duplicado no catálogo: %s", user.Email)
		}
		seen[email] = struct{}{}

		if _, ok := domain.ParseRole(string(user.Role)); !ok {
			return errors.Errorf("papel inválido para %s: %s", user.Email, user.Role)
		}
	}

	required := map[string]int{
		"billing.plans":                   len(c.Billing.Plans),
		"field_stores":                    len(c.FieldStores),
		"admin_stores":                    len(c.AdminStores),
		"promoters":                       len(c.Promoters),
		"manager.notification_templates":  len(c.Manager.NotificationTemplates),
		"manager.pending_reasons":         len(c.Manager.PendingReasons),
		"manager.price_products":          len(c.Manager.PriceProducts),
		"mentor.stores":                   len(c.Mentor.Stores),
		"mentor.issues":                   len(c.Mentor.Issues),
		"mentor.alerts":                   len(c.Mentor.Alerts),
		"promoter.products":               len(c.Promoter.Products),
		"promoter.notification_templates": len(c.Promoter.NotificationTemplates),
		"promoter.feedback_messages":      len(c.Promoter.FeedbackMessages),
		"support.bot_responses":           len(c.Support.BotResponses),
	}
	for section, size := range required {
		if size == 0 {
			return errors.Errorf("seção obrigatória vazia no catálogo: %s", section)
		}
	}

	for _, issue := range c.Mentor.Issues {
		if len(issue.Descriptions) == 0 || len(issue.Severities) == 0 {
			return errors.Errorf("categoria de problema incompleta: %s", issue.Type)
		}
	}

	return nil
}

// PromoterByID procura um promotor do elenco fixo
func (c *Catalog) PromoterByID(id int) (domain.Promoter, bool) {
	for _, p := range c.Promoters {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Promoter{}, false
}
