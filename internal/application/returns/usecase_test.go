package returns

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// ---- fakes en memoria ----

type fakeSaleRepo struct {
	sales []*entity.Sale
	lines []*entity.SaleLine
}

func (f *fakeSaleRepo) Create(*entity.Sale) error         { return errors.New("no implementado") }
func (f *fakeSaleRepo) CreateLine(*entity.SaleLine) error { return errors.New("no implementado") }

func (f *fakeSaleRepo) GetByFolio(folio string) (*entity.Sale, error) {
	for _, s := range f.sales {
		if s.Folio == folio {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSaleRepo) GetLines(saleID int64) ([]*entity.SaleLine, error) {
	var out []*entity.SaleLine
	for _, l := range f.lines {
		if l.SaleID == saleID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeSaleRepo) GetLineByProduct(saleID, productID int64) (*entity.SaleLine, error) {
	for _, l := range f.lines {
		if l.SaleID == saleID && l.ProductID == productID {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeSaleRepo) NextFolioSuffix(string) (int, error) { return 0, errors.New("no implementado") }

type fakeReturnRepo struct {
	nextSuffix    int
	nextID        int64
	returns       []*entity.Return
	lines         []*entity.ReturnLine
	createErr     error
	createErrOnce bool
}

func (f *fakeReturnRepo) Create(ret *entity.Return) error {
	if f.createErr != nil {
		err := f.createErr
		if f.createErrOnce {
			f.createErr = nil
		}
		return err
	}
	f.nextID++
	ret.ID = f.nextID
	f.returns = append(f.returns, ret)
	return nil
}

func (f *fakeReturnRepo) CreateLine(line *entity.ReturnLine) error {
	f.lines = append(f.lines, line)
	return nil
}

func (f *fakeReturnRepo) SumReturnedQuantity(saleID, productID int64) (int, error) {
	total := 0
	for _, l := range f.lines {
		if l.SaleID == saleID && l.ProductID == productID {
			total += l.QuantityReturned
		}
	}
	return total, nil
}

func (f *fakeReturnRepo) NextFolioSuffix(string) (int, error) {
	f.nextSuffix++
	return f.nextSuffix, nil
}

type fakeProductRepo struct {
	products    map[int64]*entity.Product
	addStockErr error
}

func (f *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) GetByCode(string) (*entity.Product, error) { return nil, nil }

func (f *fakeProductRepo) List(bool, int, int) ([]*entity.Product, error) { return nil, nil }

func (f *fakeProductRepo) ListLowStock() ([]*entity.Product, error) { return nil, nil }

func (f *fakeProductRepo) AddStock(id int64, qty int) (int, error) {
	if f.addStockErr != nil {
		return 0, f.addStockErr
	}
	p, ok := f.products[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	p.Stock += qty
	return p.Stock, nil
}

type fakeMovementRepo struct {
	movements []*entity.InventoryMovement
}

func (f *fakeMovementRepo) Create(m *entity.InventoryMovement) error {
	f.movements = append(f.movements, m)
	return nil
}

func (f *fakeMovementRepo) ListByReference(reference string) ([]*entity.InventoryMovement, error) {
	var out []*entity.InventoryMovement
	for _, m := range f.movements {
		if m.Reference == reference {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeTxRunner struct {
	saleRepo    *fakeSaleRepo
	returnRepo  *fakeReturnRepo
	productRepo *fakeProductRepo
	movRepo     *fakeMovementRepo
	commits     int
	rollbacks   int
}

func (f *fakeTxRunner) RunDevolucion(_ context.Context, fn func(
	repository.SaleRepository,
	repository.ReturnRepository,
	repository.ProductRepository,
	repository.InventoryMovementRepository,
) error) error {
	if err := fn(f.saleRepo, f.returnRepo, f.productRepo, f.movRepo); err != nil {
		f.rollbacks++
		return err
	}
	f.commits++
	return nil
}

// env entorno de prueba: una venta COMPLETED con dos líneas.
type env struct {
	uc     *ProcessReturnUseCase
	runner *fakeTxRunner
}

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func newEnv() *env {
	saleRepo := &fakeSaleRepo{
		sales: []*entity.Sale{
			{ID: 100, Folio: "V-20260827-0001", Total: d("35.00"), PaymentMethod: entity.PaymentCash, Status: entity.SaleStatusCompleted, Date: time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)},
		},
		lines: []*entity.SaleLine{
			{ID: 1, SaleID: 100, ProductID: 1, Quantity: 2, UnitPrice: d("10.00"), Subtotal: d("20.00"), LineTotal: d("18.00")},
			{ID: 2, SaleID: 100, ProductID: 2, Quantity: 1, UnitPrice: d("15.00"), Subtotal: d("15.00"), LineTotal: d("15.00")},
		},
	}
	returnRepo := &fakeReturnRepo{}
	productRepo := &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, Code: "P001", Name: "Café molido", Stock: 5},
		2: {ID: 2, Code: "P002", Name: "Azúcar", Stock: 3},
	}}
	movRepo := &fakeMovementRepo{}
	runner := &fakeTxRunner{saleRepo: saleRepo, returnRepo: returnRepo, productRepo: productRepo, movRepo: movRepo}

	uc := NewProcessReturnUseCase(runner, saleRepo, returnRepo, productRepo)
	uc.now = func() time.Time {
		return time.Date(2026, 8, 27, 16, 0, 0, 0, time.UTC)
	}
	return &env{uc: uc, runner: runner}
}

func (e *env) process(items []dto.ReturnItemRequest) (*dto.ReturnResponse, error) {
	return e.uc.ProcessReturn(context.Background(), 7, dto.ProcessReturnRequest{
		SaleFolio: "V-20260827-0001",
		Items:     items,
		Reason:    "producto dañado",
	})
}

func TestProcessReturn_DevolucionSimple(t *testing.T) {
	e := newEnv()

	resp, err := e.process([]dto.ReturnItemRequest{{ProductID: 1, Quantity: 1}})

	require.NoError(t, err)
	assert.Equal(t, "DEV-20260827-0001", resp.Folio)
	// Reembolso al precio unitario almacenado, sin reajuste por descuento
	assert.True(t, resp.RefundAmount.Equal(d("10.00")), "reembolso: %s", resp.RefundAmount)
	assert.Equal(t, 1, e.runner.commits)

	// Stock incrementado y movimiento con snapshot antes/después
	assert.Equal(t, 6, e.runner.productRepo.products[1].Stock)
	require.Len(t, e.runner.movRepo.movements, 1)
	mov := e.runner.movRepo.movements[0]
	assert.Equal(t, entity.MovementTypeReturn, mov.Type)
	assert.Equal(t, 5, mov.StockBefore)
	assert.Equal(t, 6, mov.StockAfter)
	assert.Equal(t, "DEV-20260827-0001", mov.Reference)
	assert.Equal(t, int64(7), mov.PerformedBy)

	require.Len(t, e.runner.returnRepo.lines, 1)
	line := e.runner.returnRepo.lines[0]
	assert.Equal(t, 1, line.QuantityReturned)
	assert.True(t, line.UnitPrice.Equal(d("10.00")))
}

func TestProcessReturn_ExcedeCantidadComprada(t *testing.T) {
	e := newEnv()

	// Primera devolución consume 1 de las 2 unidades compradas
	_, err := e.process([]dto.ReturnItemRequest{{ProductID: 1, Quantity: 1}})
	require.NoError(t, err)

	// Pedir 2 más excede: compradas 2, ya devueltas 1
	_, err = e.process([]dto.ReturnItemRequest{{ProductID: 1, Quantity: 2}})

	var limitErr *domain.ReturnLimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, int64(1), limitErr.ProductID)
	assert.Equal(t, 2, limitErr.Purchased)
	assert.Equal(t, 1, limitErr.AlreadyReturned)
	assert.Equal(t, 2, limitErr.Requested)
	assert.Equal(t, 1, limitErr.Available())
	assert.Contains(t, limitErr.Error(), "Compradas: 2")
	assert.Contains(t, limitErr.Error(), "Ya devueltas: 1")
	assert.Contains(t, limitErr.Error(), "Disponibles: 1")

	// Solo la primera unidad quedó confirmada
	assert.Equal(t, 1, e.runner.commits)
	assert.Equal(t, 1, e.runner.rollbacks)
}

func TestProcessReturn_ProductoRepetidoEnLaMismaPeticion(t *testing.T) {
	e := newEnv()

	// P1 se compró 2 veces; pedir 2 + 1 en una sola petición excede el límite
	// aunque aún no haya devoluciones persistidas
	_, err := e.process([]dto.ReturnItemRequest{
		{ProductID: 1, Quantity: 2},
		{ProductID: 1, Quantity: 1},
	})

	var limitErr *domain.ReturnLimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, int64(1), limitErr.ProductID)
	assert.Equal(t, 2, limitErr.Purchased)
	assert.Equal(t, 2, limitErr.AlreadyReturned)
	assert.Equal(t, 1, limitErr.Requested)
	assert.Equal(t, 0, limitErr.Available())

	// Nada persistido, stock intacto
	assert.Zero(t, e.runner.commits)
	assert.Empty(t, e.runner.returnRepo.returns)
	assert.Empty(t, e.runner.movRepo.movements)
	assert.Equal(t, 5, e.runner.productRepo.products[1].Stock)
}

func TestProcessReturn_ProductoRepetidoDentroDelLimite(t *testing.T) {
	e := newEnv()

	// 1 + 1 repetido suma exactamente lo comprado: debe pasar
	resp, err := e.process([]dto.ReturnItemRequest{
		{ProductID: 1, Quantity: 1},
		{ProductID: 1, Quantity: 1},
	})

	require.NoError(t, err)
	assert.True(t, resp.RefundAmount.Equal(d("20.00")), "reembolso: %s", resp.RefundAmount)
	assert.Equal(t, 7, e.runner.productRepo.products[1].Stock)
	assert.Len(t, e.runner.returnRepo.lines, 2)
}

func TestProcessReturn_AcumuladoHastaAgotar(t *testing.T) {
	e := newEnv()

	_, err := e.process([]dto.ReturnItemRequest{{ProductID: 1, Quantity: 1}})
	require.NoError(t, err)
	_, err = e.process([]dto.ReturnItemRequest{{ProductID: 1, Quantity: 1}})
	require.NoError(t, err)

	// Las 2 compradas ya se devolvieron: una más debe rechazarse
	_, err = e.process([]dto.ReturnItemRequest{{ProductID: 1, Quantity: 1}})
	var limitErr *domain.ReturnLimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, 0, limitErr.Available())
	assert.Equal(t, 7, e.runner.productRepo.products[1].Stock)
}

func TestProcessReturn_VentaInexistente(t *testing.T) {
	e := newEnv()

	_, err := e.uc.ProcessReturn(context.Background(), 7, dto.ProcessReturnRequest{
		SaleFolio: "V-20260827-9999",
		Items:     []dto.ReturnItemRequest{{ProductID: 1, Quantity: 1}},
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, e.runner.returnRepo.returns)
	assert.Empty(t, e.runner.movRepo.movements)
	assert.Equal(t, 5, e.runner.productRepo.products[1].Stock)
}

func TestProcessReturn_ProductoFueraDeLaVenta(t *testing.T) {
	e := newEnv()

	_, err := e.process([]dto.ReturnItemRequest{{ProductID: 99, Quantity: 1}})

	assert.ErrorIs(t, err, domain.ErrProductNotInSale)
	assert.Zero(t, e.runner.commits)
}

func TestProcessReturn_ValidacionEntrada(t *testing.T) {
	e := newEnv()

	cases := []struct {
		name string
		in   dto.ProcessReturnRequest
	}{
		{"sin folio", dto.ProcessReturnRequest{Items: []dto.ReturnItemRequest{{ProductID: 1, Quantity: 1}}}},
		{"sin items", dto.ProcessReturnRequest{SaleFolio: "V-20260827-0001"}},
		{"cantidad cero", dto.ProcessReturnRequest{
			SaleFolio: "V-20260827-0001",
			Items:     []dto.ReturnItemRequest{{ProductID: 1, Quantity: 0}},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.uc.ProcessReturn(context.Background(), 7, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Zero(t, e.runner.commits, "el rechazo debe ocurrir antes de la transacción")
			assert.Zero(t, e.runner.rollbacks)
		})
	}
}

func TestProcessReturn_FalloDeStockRevierteUnidad(t *testing.T) {
	e := newEnv()
	e.runner.productRepo.addStockErr = errors.New("stock falló")

	_, err := e.process([]dto.ReturnItemRequest{{ProductID: 1, Quantity: 1}})

	require.Error(t, err)
	assert.Zero(t, e.runner.commits)
	assert.Equal(t, 1, e.runner.rollbacks)
	assert.Empty(t, e.runner.movRepo.movements)
}

func TestProcessReturn_ReintentaUnaVezAnteFolioTomado(t *testing.T) {
	e := newEnv()
	e.runner.returnRepo.createErr = domain.ErrFolioConflict
	e.runner.returnRepo.createErrOnce = true

	resp, err := e.process([]dto.ReturnItemRequest{{ProductID: 2, Quantity: 1}})

	require.NoError(t, err)
	// El primer intento consumió el sufijo 1; el reintento toma el 2
	assert.Equal(t, "DEV-20260827-0002", resp.Folio)
	assert.Equal(t, 1, e.runner.commits)
	assert.Equal(t, 1, e.runner.rollbacks)
}

func TestProcessReturn_MultiplesProductos(t *testing.T) {
	e := newEnv()

	resp, err := e.process([]dto.ReturnItemRequest{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	})

	require.NoError(t, err)
	// 2*10.00 + 1*15.00
	assert.True(t, resp.RefundAmount.Equal(d("35.00")), "reembolso: %s", resp.RefundAmount)
	assert.Len(t, e.runner.returnRepo.lines, 2)
	assert.Len(t, e.runner.movRepo.movements, 2)
	assert.Equal(t, 7, e.runner.productRepo.products[1].Stock)
	assert.Equal(t, 4, e.runner.productRepo.products[2].Stock)
}

func TestLookupSaleForReturn(t *testing.T) {
	e := newEnv()

	_, err := e.process([]dto.ReturnItemRequest{{ProductID: 1, Quantity: 1}})
	require.NoError(t, err)

	resp, err := e.uc.LookupSaleForReturn(context.Background(), "V-20260827-0001")

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.SaleID)
	assert.Equal(t, "V-20260827-0001", resp.Folio)
	require.Len(t, resp.Items, 2)

	first := resp.Items[0]
	assert.Equal(t, "Café molido", first.ProductName)
	assert.Equal(t, 2, first.Quantity)
	assert.Equal(t, 1, first.AlreadyReturned)
	assert.Equal(t, 1, first.Returnable)

	second := resp.Items[1]
	assert.Equal(t, 0, second.AlreadyReturned)
	assert.Equal(t, 1, second.Returnable)
}

func TestLookupSaleForReturn_NoEncontrada(t *testing.T) {
	e := newEnv()

	_, err := e.uc.LookupSaleForReturn(context.Background(), "V-20260101-0001")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = e.uc.LookupSaleForReturn(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
