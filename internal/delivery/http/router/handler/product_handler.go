package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"ecommerce/config"
	"ecommerce/internal/delivery/http/response"
	domainerrors "ecommerce/internal/domain/errors"
	"ecommerce/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPageNumber = 1
	imageFormField    = "image"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	CatalogUC usecase.CatalogUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// ProductHandler serves product management and the public catalog queries.
type ProductHandler struct {
	productUC       usecase.ProductUsecase
	catalogUC       usecase.CatalogUsecase
	defaultPageSize int
	logger          *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	pageSize := 5
	if params.Config != nil && params.Config.Catalog != nil && params.Config.Catalog.DefaultPageSize > 0 {
		pageSize = params.Config.Catalog.DefaultPageSize
	}

	return &ProductHandler{
		productUC:       params.ProductUC,
		catalogUC:       params.CatalogUC,
		defaultPageSize: pageSize,
		logger:          params.Logger,
	}
}

// ProductForm is the multipart form used to create or update a product.
type ProductForm struct {
	Name        string  `form:"name" validate:"required"`
	Description string  `form:"description"`
	Price       float64 `form:"price" validate:"gte=0"`
	SKU         string  `form:"sku"`
	Stock       int     `form:"stock" validate:"gte=0"`
	CategoryID  int64   `form:"categoryId" validate:"required"`
}

// ListProducts returns every product ordered by name.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productUC.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products), "")
}

// GetProduct returns one product with its category name.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "")
}

// ListPaged returns one page of the id-ordered listing.
func (h *ProductHandler) ListPaged(c echo.Context) error {
	pageNumber, pageSize := defaultPageNumber, h.defaultPageSize
	err := echo.QueryParamsBinder(c).
		Int("pageNumber", &pageNumber).
		Int("pageSize", &pageSize).
		BindError()
	if err != nil {
		return response.BadRequest(c, "INVALID_PAGE", "pageNumber and pageSize must be integers")
	}

	page, err := h.catalogUC.ListPaged(c.Request().Context(), pageNumber, pageSize)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &ProductPageResponse{
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
		TotalItems: page.TotalItems,
		Items:      toProductResponses(page.Items),
	}, "")
}

// ListByCategory returns the products of a category.
func (h *ProductHandler) ListByCategory(c echo.Context) error {
	categoryID, err := strconv.ParseInt(c.Param("categoryId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid category ID")
	}

	products, err := h.catalogUC.ListByCategory(c.Request().Context(), categoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products), "")
}

// Search matches products by name or description.
func (h *ProductHandler) Search(c echo.Context) error {
	products, err := h.catalogUC.Search(c.Request().Context(), textParam(c, "searchTerm"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products), "")
}

// BuyProduct takes quantity units of the named product from stock.
func (h *ProductHandler) BuyProduct(c echo.Context) error {
	quantity, err := strconv.Atoi(c.Param("quantity"))
	if err != nil {
		return response.BadRequest(c, "INVALID_QUANTITY", "Quantity must be an integer")
	}

	purchased, err := h.catalogUC.BuyProduct(c.Request().Context(), textParam(c, "name"), quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Product purchased successfully"
	if !purchased {
		message = "Insufficient stock"
	}

	return response.Success(c, http.StatusOK, &PurchaseResponse{Purchased: purchased}, message)
}

// CreateProduct creates a product from a multipart form.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	input, err := h.bindProductForm(c)
	if err != nil {
		return err
	}

	image, closeImage, err := h.formImage(c)
	if err != nil {
		return err
	}
	defer closeImage()

	product, err := h.productUC.CreateProduct(c.Request().Context(), input, image)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderLocation, c.Request().URL.Path+"/"+formatID(product.ID))

	return response.Success(c, http.StatusCreated, toProductResponse(product), "Product created successfully")
}

// UpdateProduct replaces the editable fields of a product.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	input, err := h.bindProductForm(c)
	if err != nil {
		return err
	}

	image, closeImage, err := h.formImage(c)
	if err != nil {
		return err
	}
	defer closeImage()

	product, err := h.productUC.UpdateProduct(c.Request().Context(), id, input, image)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "Product updated successfully")
}

// DeleteProduct removes a product.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// QRCode renders the product label as PNG.
func (h *ProductHandler) QRCode(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	png, err := h.productUC.ProductQRCode(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Image streams a stored product image.
func (h *ProductHandler) Image(c echo.Context) error {
	image, err := h.productUC.OpenImage(c.Request().Context(), textParam(c, "key"))
	if err != nil {
		return errors.WithStack(err)
	}
	defer image.Body.Close()

	contentType := image.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	if image.Size > 0 {
		c.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(image.Size, 10))
	}

	return c.Stream(http.StatusOK, contentType, image.Body)
}

// bindProductForm reports problems as domain validation errors for the error handler to render.
func (h *ProductHandler) bindProductForm(c echo.Context) (*usecase.ProductInput, error) {
	var form ProductForm
	if err := c.Bind(&form); err != nil {
		return nil, domainerrors.ValidationError("invalid product form")
	}
	if err := c.Validate(&form); err != nil {
		return nil, domainerrors.ValidationError(err.Error())
	}

	return &usecase.ProductInput{
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		SKU:         form.SKU,
		Stock:       form.Stock,
		CategoryID:  form.CategoryID,
	}, nil
}

func (h *ProductHandler) formImage(c echo.Context) (*usecase.ImageUpload, func(), error) {
	header, err := c.FormFile(imageFormField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, func() {}, domainerrors.ValidationError("unable to read the uploaded image")
	}

	file, err := header.Open()
	if err != nil {
		return nil, func() {}, errors.Wrap(err, "failed to open uploaded image")
	}

	return imageUpload(header, file), func() { _ = file.Close() }, nil
}

func imageUpload(header *multipart.FileHeader, body io.Reader) *usecase.ImageUpload {
	return &usecase.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Body:        body,
	}
}
