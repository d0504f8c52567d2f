package provider

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/terraform-plugin-framework-validators/int64validator"
	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/planmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/stringplanmodifier"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"github.com/ankek/terraform-provider-pictograph/internal/generator"
	"github.com/ankek/terraform-provider-pictograph/internal/interfaces"
	"github.com/ankek/terraform-provider-pictograph/internal/renderer"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ resource.Resource = &SymbolResource{}
var _ resource.ResourceWithConfigure = &SymbolResource{}

func NewSymbolResource() resource.Resource {
	return &SymbolResource{
		generator: generator.New(),
	}
}

// SymbolResource defines the resource implementation.
type SymbolResource struct {
	generator interfaces.PictographGenerator
	defaults  *PictographProviderModel
}

// SymbolResourceModel describes the resource data model.
type SymbolResourceModel struct {
	ID         types.String  `tfsdk:"id"`
	Code       types.String  `tfsdk:"code"`
	Hostility  types.String  `tfsdk:"hostility"`
	Finiteness types.String  `tfsdk:"finiteness"`
	OutputDir  types.String  `tfsdk:"output_dir"`
	Format     types.String  `tfsdk:"format"`
	DPI        types.Int64   `tfsdk:"dpi"`
	Opaque     types.Bool    `tfsdk:"opaque"`
	Caption    types.Bool    `tfsdk:"caption"`
	OutputPath types.String  `tfsdk:"output_path"`
	RingStyle  types.String  `tfsdk:"ring_style"`
	Radius     types.Float64 `tfsdk:"radius"`
	LineWidth  types.Float64 `tfsdk:"line_width"`
}

func (r *SymbolResource) Metadata(ctx context.Context, req resource.MetadataRequest, resp *resource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_symbol"
}

func (r *SymbolResource) Schema(ctx context.Context, req resource.SchemaRequest, resp *resource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Renders an annex pictograph to `{code}_symbol.png` (or `.svg`).",

		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Resource identifier (the output path)",
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.UseStateForUnknown(),
				},
			},
			"code": schema.StringAttribute{
				MarkdownDescription: "Annex code, used as the output file name stem.",
				Required:            true,
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(1),
				},
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.RequiresReplace(),
				},
			},
			"hostility": schema.StringAttribute{
				MarkdownDescription: "Hostility class: 'safe' (dotted ring), 'moderate' (solid ring) or 'hazardous' (double ring).",
				Required:            true,
				Validators: []validator.String{
					stringvalidator.OneOfCaseInsensitive("safe", "moderate", "hazardous"),
				},
			},
			"finiteness": schema.StringAttribute{
				MarkdownDescription: "Finiteness class: 'infinite' (triangle) or 'finite' (flat mark).",
				Required:            true,
				Validators: []validator.String{
					stringvalidator.OneOfCaseInsensitive("infinite", "finite"),
				},
			},
			"output_dir": schema.StringAttribute{
				MarkdownDescription: "Directory to write into. Falls back to the provider's `output_dir`, then the working directory.",
				Optional:            true,
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.RequiresReplace(),
				},
			},
			"format": schema.StringAttribute{
				MarkdownDescription: "Output format: 'png' or 'svg'. Falls back to the provider's `format`, then 'png'.",
				Optional:            true,
				Validators: []validator.String{
					stringvalidator.OneOf("png", "svg"),
				},
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.RequiresReplace(),
				},
			},
			"dpi": schema.Int64Attribute{
				MarkdownDescription: "Resolution in dots per inch of the 5 inch canvas. Default is 300.",
				Optional:            true,
				Validators: []validator.Int64{
					int64validator.Between(renderer.MinDPI, renderer.MaxDPI),
				},
			},
			"opaque": schema.BoolAttribute{
				MarkdownDescription: "Fill the background white instead of leaving it transparent. Default is false.",
				Optional:            true,
			},
			"caption": schema.BoolAttribute{
				MarkdownDescription: "Print the code under the rings. Default is false.",
				Optional:            true,
			},
			"output_path": schema.StringAttribute{
				MarkdownDescription: "Path of the rendered file.",
				Computed:            true,
			},
			"ring_style": schema.StringAttribute{
				MarkdownDescription: "Resolved ring style: dotted, solid or double.",
				Computed:            true,
			},
			"radius": schema.Float64Attribute{
				MarkdownDescription: "Resolved outer ring radius in unit-square coordinates.",
				Computed:            true,
			},
			"line_width": schema.Float64Attribute{
				MarkdownDescription: "Resolved ring line width in points.",
				Computed:            true,
			},
		},
	}
}

func (r *SymbolResource) Configure(ctx context.Context, req resource.ConfigureRequest, resp *resource.ConfigureResponse) {
	if req.ProviderData == nil {
		return
	}

	defaults, ok := req.ProviderData.(*PictographProviderModel)
	if !ok {
		resp.Diagnostics.AddError(
			"Unexpected Resource Configure Type",
			fmt.Sprintf("Expected *PictographProviderModel, got: %T", req.ProviderData),
		)
		return
	}

	r.defaults = defaults
}

func (r *SymbolResource) Create(ctx context.Context, req resource.CreateRequest, resp *resource.CreateResponse) {
	var data SymbolResourceModel

	resp.Diagnostics.Append(req.Plan.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	resp.Diagnostics.Append(r.render(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

func (r *SymbolResource) Read(ctx context.Context, req resource.ReadRequest, resp *resource.ReadResponse) {
	var data SymbolResourceModel

	resp.Diagnostics.Append(req.State.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	// Check if output file still exists
	if _, err := os.Stat(data.OutputPath.ValueString()); os.IsNotExist(err) {
		tflog.Info(ctx, "pictograph file missing, removing from state", map[string]interface{}{
			"path": data.OutputPath.ValueString(),
		})
		resp.State.RemoveResource(ctx)
		return
	}

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

func (r *SymbolResource) Update(ctx context.Context, req resource.UpdateRequest, resp *resource.UpdateResponse) {
	var data, prior SymbolResourceModel

	resp.Diagnostics.Append(req.Plan.Get(ctx, &data)...)
	resp.Diagnostics.Append(req.State.Get(ctx, &prior)...)
	if resp.Diagnostics.HasError() {
		return
	}

	// Re-render with updated configuration
	resp.Diagnostics.Append(r.rerender(ctx, prior.OutputPath.ValueString(), &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

func (r *SymbolResource) Delete(ctx context.Context, req resource.DeleteRequest, resp *resource.DeleteResponse) {
	var data SymbolResourceModel

	resp.Diagnostics.Append(req.State.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	if err := removeOutput(data.OutputPath.ValueString()); err != nil {
		resp.Diagnostics.AddError("Failed to remove pictograph", err.Error())
	}
}

// render generates the pictograph described by data and fills the computed
// attributes.
func (r *SymbolResource) render(ctx context.Context, data *SymbolResourceModel) diag.Diagnostics {
	var diags diag.Diagnostics

	result, err := r.generator.Generate(ctx, interfaces.GenerateConfig{
		Code:       data.Code.ValueString(),
		Hostility:  data.Hostility.ValueString(),
		Finiteness: data.Finiteness.ValueString(),
		Options:    r.renderOptions(data),
	})
	if err != nil {
		diags.AddError("Failed to render pictograph", err.Error())
		return diags
	}

	tflog.Info(ctx, "rendered pictograph", map[string]interface{}{
		"code":       result.Request.Code,
		"path":       result.OutputPath,
		"ring_style": string(result.Style.RingStyle),
	})

	data.ID = types.StringValue(result.OutputPath)
	data.OutputPath = types.StringValue(result.OutputPath)
	data.RingStyle = types.StringValue(string(result.Style.RingStyle))
	data.Radius = types.Float64Value(result.Style.Radius)
	data.LineWidth = types.Float64Value(result.Style.LineWidth)

	return diags
}

// rerender renders data again and removes the previous file when provider
// defaults moved it to a different path.
func (r *SymbolResource) rerender(ctx context.Context, priorPath string, data *SymbolResourceModel) diag.Diagnostics {
	diags := r.render(ctx, data)
	if diags.HasError() {
		return diags
	}

	if priorPath == "" || priorPath == data.OutputPath.ValueString() {
		return diags
	}

	tflog.Info(ctx, "pictograph moved, removing previous file", map[string]interface{}{
		"previous": priorPath,
		"path":     data.OutputPath.ValueString(),
	})
	if err := removeOutput(priorPath); err != nil {
		diags.AddWarning("Failed to remove previous pictograph", err.Error())
	}
	return diags
}

// renderOptions merges resource settings over provider defaults
func (r *SymbolResource) renderOptions(data *SymbolResourceModel) renderer.RenderOptions {
	opts := renderer.RenderOptions{
		OutputDir: ".",
		Format:    "png",
		DPI:       renderer.DefaultDPI,
	}

	if r.defaults != nil {
		if v := r.defaults.OutputDir.ValueString(); v != "" {
			opts.OutputDir = v
		}
		if v := r.defaults.Format.ValueString(); v != "" {
			opts.Format = v
		}
	}

	if v := data.OutputDir.ValueString(); v != "" {
		opts.OutputDir = v
	}
	if v := data.Format.ValueString(); v != "" {
		opts.Format = v
	}
	if !data.DPI.IsNull() && !data.DPI.IsUnknown() {
		opts.DPI = int(data.DPI.ValueInt64())
	}
	opts.Opaque = data.Opaque.ValueBool()
	opts.Caption = data.Caption.ValueBool()

	return opts
}

// removeOutput deletes a rendered file; a file that is already gone is fine.
func removeOutput(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
