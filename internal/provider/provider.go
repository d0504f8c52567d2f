// Package provider implements the Terraform provider for annex pictographs.
// The pictograph_symbol resource renders an image file; the pictograph_style
// data source exposes the ring style a hostility class resolves to.
package provider

import (
	"context"

	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/provider"
	"github.com/hashicorp/terraform-plugin-framework/provider/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

// Ensure PictographProvider satisfies various provider interfaces.
var _ provider.Provider = &PictographProvider{}

// PictographProvider defines the provider implementation.
type PictographProvider struct {
	// version is set to the provider version on release, "dev" when the
	// provider is built and ran locally, and "test" when running acceptance
	// testing.
	version string
}

// PictographProviderModel describes the provider data model.
type PictographProviderModel struct {
	OutputDir types.String `tfsdk:"output_dir"`
	Format    types.String `tfsdk:"format"`
}

func (p *PictographProvider) Metadata(ctx context.Context, req provider.MetadataRequest, resp *provider.MetadataResponse) {
	resp.TypeName = "pictograph"
	resp.Version = p.version
}

func (p *PictographProvider) Schema(ctx context.Context, req provider.SchemaRequest, resp *provider.SchemaResponse) {
	resp.Schema = schema.Schema{
		Description: "The Pictograph provider renders annex pictographs that encode a hostility class and a finiteness class as ring style and annotation glyph.",
		Attributes: map[string]schema.Attribute{
			"output_dir": schema.StringAttribute{
				Description: "Default directory for rendered pictographs. Defaults to the working directory.",
				Optional:    true,
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(1),
				},
			},
			"format": schema.StringAttribute{
				Description: "Default output format: 'png' or 'svg'. Defaults to 'png'.",
				Optional:    true,
				Validators: []validator.String{
					stringvalidator.OneOf("png", "svg"),
				},
			},
		},
	}
}

func (p *PictographProvider) Configure(ctx context.Context, req provider.ConfigureRequest, resp *provider.ConfigureResponse) {
	var data PictographProviderModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)

	if resp.Diagnostics.HasError() {
		return
	}

	// Make defaults available to resources and data sources
	resp.DataSourceData = &data
	resp.ResourceData = &data
}

func (p *PictographProvider) Resources(ctx context.Context) []func() resource.Resource {
	return []func() resource.Resource{
		NewSymbolResource,
	}
}

func (p *PictographProvider) DataSources(ctx context.Context) []func() datasource.DataSource {
	return []func() datasource.DataSource{
		NewStyleDataSource,
	}
}

func New(version string) func() provider.Provider {
	return func() provider.Provider {
		return &PictographProvider{
			version: version,
		}
	}
}
