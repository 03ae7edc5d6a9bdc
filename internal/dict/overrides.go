package dict

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/offerdesk/internal/model"
)

// overridesFile is the admin overrides document. Only the sections present
// in the file replace the corresponding defaults; absent sections keep the
// built-in values.
type overridesFile struct {
	Dictionaries struct {
		Modules                []ModuleInfo                   `yaml:"modules"`
		Integrations           []Integration                  `yaml:"integrations"`
		ImplementationPackages []ImplementationPackage        `yaml:"implementation_packages"`
		SupportPackages        []SupportPackage               `yaml:"support_packages"`
		SupportPrices          map[string]map[model.BillingPeriod]int64 `yaml:"support_prices"`
		PriceMatrix            map[PriceTier]map[string]int64 `yaml:"price_matrix"`
		Params                 *GlobalParams                  `yaml:"params"`
	} `yaml:"dictionaries"`
}

// LoadOverrides reads a YAML overrides file and merges it over the defaults.
func LoadOverrides(path string) (Dictionaries, error) {
	d := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return d, eris.Wrapf(err, "dict: read overrides %s", path)
	}

	var f overridesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return d, eris.Wrap(err, "dict: parse overrides")
	}

	o := f.Dictionaries
	if len(o.Modules) > 0 {
		d.Modules = o.Modules
	}
	if len(o.Integrations) > 0 {
		d.Integrations = o.Integrations
	}
	if len(o.ImplementationPackages) > 0 {
		d.ImplementationPackages = o.ImplementationPackages
	}
	if len(o.SupportPackages) > 0 {
		d.SupportPackages = o.SupportPackages
	}
	for pkg, periods := range o.SupportPrices {
		d.SupportPrices[pkg] = periods
	}
	for tier, row := range o.PriceMatrix {
		if d.PriceMatrix[tier] == nil {
			d.PriceMatrix[tier] = map[string]int64{}
		}
		for id, price := range row {
			d.PriceMatrix[tier][id] = price
		}
	}
	if o.Params != nil {
		d.Params = *o.Params
	}

	return d, nil
}
