package provider

import (
	"context"

	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"

	"github.com/ankek/terraform-provider-pictograph/internal/symbol"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ datasource.DataSource = &StyleDataSource{}

// StyleDataSource resolves a hostility class without rendering anything.
type StyleDataSource struct{}

func NewStyleDataSource() datasource.DataSource {
	return &StyleDataSource{}
}

// StyleDataSourceModel describes the data source data model.
type StyleDataSourceModel struct {
	ID        types.String  `tfsdk:"id"`
	Hostility types.String  `tfsdk:"hostility"`
	RingStyle types.String  `tfsdk:"ring_style"`
	Radius    types.Float64 `tfsdk:"radius"`
	LineWidth types.Float64 `tfsdk:"line_width"`
}

func (d *StyleDataSource) Metadata(ctx context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_style"
}

func (d *StyleDataSource) Schema(ctx context.Context, req datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Resolves the ring style used for a hostility class.",

		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Data source identifier (the normalised hostility class)",
			},
			"hostility": schema.StringAttribute{
				MarkdownDescription: "Hostility class: 'safe', 'moderate' or 'hazardous'.",
				Required:            true,
				Validators: []validator.String{
					stringvalidator.OneOfCaseInsensitive("safe", "moderate", "hazardous"),
				},
			},
			"ring_style": schema.StringAttribute{
				MarkdownDescription: "Ring style: dotted, solid or double.",
				Computed:            true,
			},
			"radius": schema.Float64Attribute{
				MarkdownDescription: "Outer ring radius in unit-square coordinates.",
				Computed:            true,
			},
			"line_width": schema.Float64Attribute{
				MarkdownDescription: "Ring line width in points.",
				Computed:            true,
			},
		},
	}
}

func (d *StyleDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	var data StyleDataSourceModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	if err := resolveStyle(&data); err != nil {
		resp.Diagnostics.AddError("Invalid hostility", err.Error())
		return
	}

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

// resolveStyle fills the computed attributes from the hostility class
func resolveStyle(data *StyleDataSourceModel) error {
	h, err := symbol.ParseHostility(data.Hostility.ValueString())
	if err != nil {
		return err
	}
	style, err := symbol.Resolve(h)
	if err != nil {
		return err
	}

	data.ID = types.StringValue(string(h))
	data.RingStyle = types.StringValue(string(style.RingStyle))
	data.Radius = types.Float64Value(style.Radius)
	data.LineWidth = types.Float64Value(style.LineWidth)
	return nil
}
