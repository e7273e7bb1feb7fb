package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-municipal/internal/application/auth"
	"github.com/jhoicas/inventario-municipal/internal/application/equipos"
	"github.com/jhoicas/inventario-municipal/internal/domain"
	"github.com/jhoicas/inventario-municipal/internal/domain/entity"
	"github.com/jhoicas/inventario-municipal/internal/domain/repository"
	apphttp "github.com/jhoicas/inventario-municipal/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria para montar la API completa sin base de datos
// ──────────────────────────────────────────────────────────────────────────────

type equiposEnMemoria struct {
	equipos []entity.Equipo
}

func (r *equiposEnMemoria) List(ctx context.Context, f repository.Filtros) ([]entity.Equipo, error) {
	if f.Oficina == "" || f.Oficina == repository.OficinaTodas {
		return r.equipos, nil
	}
	var out []entity.Equipo
	for _, e := range r.equipos {
		if e.Oficina == f.Oficina {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *equiposEnMemoria) GetByID(ctx context.Context, id int) (*entity.Equipo, error) {
	for i := range r.equipos {
		if r.equipos[i].ID == id {
			return &r.equipos[i], nil
		}
	}
	return nil, nil
}

func (r *equiposEnMemoria) Create(ctx context.Context, e *entity.Equipo) (*entity.Equipo, error) {
	copia := *e
	copia.ID = len(r.equipos) + 1
	r.equipos = append(r.equipos, copia)
	return &copia, nil
}

func (r *equiposEnMemoria) Update(ctx context.Context, id int, campos repository.EquipoUpdate) (*entity.Equipo, error) {
	e, _ := r.GetByID(ctx, id)
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if campos.Estado != nil {
		e.Estado = *campos.Estado
	}
	if campos.Oficina != nil {
		e.Oficina = *campos.Oficina
	}
	return e, nil
}

func (r *equiposEnMemoria) Delete(ctx context.Context, id int) error {
	for i := range r.equipos {
		if r.equipos[i].ID == id {
			r.equipos = append(r.equipos[:i], r.equipos[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *equiposEnMemoria) Estadisticas(ctx context.Context) (*repository.Estadisticas, error) {
	return &repository.Estadisticas{Total: len(r.equipos)}, nil
}

func (r *equiposEnMemoria) Oficinas(ctx context.Context) ([]string, error) {
	return []string{"Caja", "Informática"}, nil
}

func (r *equiposEnMemoria) SiguienteNumero(ctx context.Context) (string, error) { return "43", nil }

func (r *equiposEnMemoria) DeleteAll(ctx context.Context) error {
	r.equipos = nil
	return nil
}

type usuariosEnMemoria struct {
	porUsername map[string]*entity.Usuario
}

func (r *usuariosEnMemoria) Create(ctx context.Context, u *entity.Usuario) error {
	if _, ok := r.porUsername[u.Username]; ok {
		return domain.ErrUsernameTaken
	}
	u.ID = len(r.porUsername) + 1
	r.porUsername[u.Username] = u
	return nil
}

func (r *usuariosEnMemoria) GetByUsername(ctx context.Context, username string) (*entity.Usuario, error) {
	return r.porUsername[username], nil
}

type pdfEnMemoria struct{}

func (pdfEnMemoria) GenerarReporte(ctx context.Context, lista []entity.Equipo, stats *repository.Estadisticas) ([]byte, error) {
	return []byte("%PDF-1.4 test"), nil
}

// buildAPI monta la API completa sobre repositorios en memoria, con un usuario
// admin (admin/admin123) y un usuario raso (jperez/clave123) ya registrados.
func buildAPI(t *testing.T) *fiber.App {
	t.Helper()
	hashAdmin, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	hashUser, err := bcrypt.GenerateFromPassword([]byte("clave123"), bcrypt.MinCost)
	require.NoError(t, err)

	usuarios := &usuariosEnMemoria{porUsername: map[string]*entity.Usuario{
		"admin": {
			ID: 1, Username: "admin", Password: string(hashAdmin),
			NombreCompleto: "Administrador", Rol: entity.RolAdmin, Activo: true,
		},
		"jperez": {
			ID: 2, Username: "jperez", Password: string(hashUser),
			NombreCompleto: "Juan Pérez", Rol: entity.RolUsuario, Activo: true,
		},
	}}
	equiposRepo := &equiposEnMemoria{equipos: []entity.Equipo{
		{ID: 1, Numero: "1", Oficina: "Caja", Tipo: "PC", Estado: "BUENO"},
		{ID: 2, Numero: "2", Oficina: "Informática", Tipo: "LAPTOP", Estado: "REGULAR"},
	}}

	cfg := auth.JWTConfig{Secret: testJWTSecret, ExpHours: testExpHours, Issuer: testIssuer}
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    auth.NewAuthUseCase(usuarios, cfg),
		EquipoUC:  equipos.NewEquipoUseCase(equiposRepo, pdfEnMemoria{}),
		JWTSecret: testJWTSecret,
		AppName:   "inventario-test",
	})
	return app
}

// doJSON lanza una petición con cuerpo JSON y devuelve status + cuerpo decodificado.
func doJSON(t *testing.T, app *fiber.App, method, path, authHeader string, payload any) (int, map[string]interface{}) {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp.StatusCode, decoded
}

// loginToken hace login real contra la API montada y devuelve el Bearer token.
func loginToken(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	status, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		fiber.Map{"username": username, "password": password})
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]interface{})
	return "Bearer " + data["token"].(string)
}

// ──────────────────────────────────────────────────────────────────────────────
// Salud, índice y rutas desconocidas
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	app := buildAPI(t)
	status, body := doJSON(t, app, http.MethodGet, "/api/health", "", nil)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestRutaDesconocida_Retorna404(t *testing.T) {
	app := buildAPI(t)
	status, body := doJSON(t, app, http.MethodGet, "/api/no-existe", "", nil)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Ruta no encontrada", body["message"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth end-to-end
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesIncorrectas(t *testing.T) {
	app := buildAPI(t)
	status, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		fiber.Map{"username": "admin", "password": "incorrecta"})

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Credenciales incorrectas", body["message"])
}

func TestLogin_CamposFaltantes(t *testing.T) {
	app := buildAPI(t)
	status, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		fiber.Map{"username": "admin"})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Usuario y contraseña son requeridos", body["message"])
}

func TestRegister_UsuarioDuplicado_Retorna400(t *testing.T) {
	app := buildAPI(t)
	status, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "",
		fiber.Map{"username": "admin", "password": "cualquiera"})

	// 400 y no 409: contrato esperado por el cliente.
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "El usuario ya existe", body["message"])
}

func TestVerify_ConTokenDeLogin(t *testing.T) {
	app := buildAPI(t)
	token := loginToken(t, app, "jperez", "clave123")

	status, body := doJSON(t, app, http.MethodGet, "/api/auth/verify", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Token válido", body["message"])

	user := body["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, "jperez", user["username"])
	assert.Equal(t, "usuario", user["rol"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Equipos: lecturas públicas, escrituras solo admin
// ──────────────────────────────────────────────────────────────────────────────

func TestListEquipos_SinTokenYConTotal(t *testing.T) {
	app := buildAPI(t)
	status, body := doJSON(t, app, http.MethodGet, "/api/equipos", "", nil)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["total"])
	assert.Len(t, body["data"], 2)
}

func TestListEquipos_FiltroOficina(t *testing.T) {
	app := buildAPI(t)
	status, body := doJSON(t, app, http.MethodGet, "/api/equipos?oficina=Caja", "", nil)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["total"])
}

func TestGetEquipo_IDInvalido(t *testing.T) {
	app := buildAPI(t)
	status, body := doJSON(t, app, http.MethodGet, "/api/equipos/abc", "", nil)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "ID inválido", body["message"])
}

func TestGetEquipo_NoExiste(t *testing.T) {
	app := buildAPI(t)
	status, body := doJSON(t, app, http.MethodGet, "/api/equipos/99", "", nil)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Equipo no encontrado", body["message"])
}

func TestSiguienteNumero_EsRutaFija(t *testing.T) {
	// "siguiente-numero" no debe caer en el parámetro /:id.
	app := buildAPI(t)
	status, body := doJSON(t, app, http.MethodGet, "/api/equipos/siguiente-numero", "", nil)

	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "43", data["numero"])
}

func TestCreateEquipo_SinToken_Retorna401(t *testing.T) {
	app := buildAPI(t)
	status, _ := doJSON(t, app, http.MethodPost, "/api/equipos", "",
		fiber.Map{"numero": "3", "oficina": "Caja", "tipo": "PC"})

	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestCreateEquipo_UsuarioRaso_Retorna403(t *testing.T) {
	app := buildAPI(t)
	token := loginToken(t, app, "jperez", "clave123")
	status, _ := doJSON(t, app, http.MethodPost, "/api/equipos", token,
		fiber.Map{"numero": "3", "oficina": "Caja", "tipo": "PC"})

	assert.Equal(t, http.StatusForbidden, status)
}

func TestCreateEquipo_Admin_Retorna201(t *testing.T) {
	app := buildAPI(t)
	token := loginToken(t, app, "admin", "admin123")
	status, body := doJSON(t, app, http.MethodPost, "/api/equipos", token,
		fiber.Map{"numero": "3", "oficina": "Caja", "tipo": "PC"})

	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Equipo creado exitosamente", body["message"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "BUENO", data["estado"], "estado por defecto")
	assert.Equal(t, "PRINCIPAL", data["sede"], "sede por defecto")
}

func TestCreateEquipo_CamposFaltantes_Retorna400(t *testing.T) {
	app := buildAPI(t)
	token := loginToken(t, app, "admin", "admin123")
	status, body := doJSON(t, app, http.MethodPost, "/api/equipos", token,
		fiber.Map{"numero": "3"})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Número, oficina y tipo son requeridos", body["message"])
}

func TestUpdateEquipo_Admin(t *testing.T) {
	app := buildAPI(t)
	token := loginToken(t, app, "admin", "admin123")
	status, body := doJSON(t, app, http.MethodPut, "/api/equipos/1", token,
		fiber.Map{"estado": "MALO"})

	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "MALO", data["estado"])
	assert.Equal(t, "Caja", data["oficina"], "los campos omitidos se conservan")
}

func TestDeleteEquipo_NoExiste_Retorna404(t *testing.T) {
	app := buildAPI(t)
	token := loginToken(t, app, "admin", "admin123")
	status, body := doJSON(t, app, http.MethodDelete, "/api/equipos/99", token, nil)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Equipo no encontrado", body["message"])
}

func TestReporte_DevuelvePDF(t *testing.T) {
	app := buildAPI(t)
	token := loginToken(t, app, "jperez", "clave123")

	req := httptest.NewRequest(http.MethodGet, "/api/equipos/reporte", nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}
