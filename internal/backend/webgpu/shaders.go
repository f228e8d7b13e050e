//go:build windows

package webgpu

// workgroupSize is the number of threads per workgroup in every shader.
const workgroupSize = 256

// unaryHeader declares the bindings shared by the unary shaders. The
// scalar field is read by mulScalar and addScalar only.
const unaryHeader = `
@group(0) @binding(0) var<storage, read> input: array<f32>;
@group(0) @binding(1) var<storage, read_write> result: array<f32>;

struct Params {
    size: u32,
    scalar: f32,
}
@group(0) @binding(2) var<uniform> params: Params;
`

// binaryHeader declares the bindings shared by the binary shaders. A step
// of 0 broadcasts element 0 of that operand.
const binaryHeader = `
@group(0) @binding(0) var<storage, read> a: array<f32>;
@group(0) @binding(1) var<storage, read> b: array<f32>;
@group(0) @binding(2) var<storage, read_write> result: array<f32>;

struct Params {
    size: u32,
    a_step: u32,
    b_step: u32,
}
@group(0) @binding(3) var<uniform> params: Params;
`

func unaryShader(body string) string {
	return unaryHeader + `
@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        let x = input[idx];
        result[idx] = ` + body + `;
    }
}
`
}

func binaryShader(helpers, body string) string {
	return binaryHeader + helpers + `
@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        let x = a[idx * params.a_step];
        let y = b[idx * params.b_step];
        result[idx] = ` + body + `;
    }
}
`
}

var (
	expShader = unaryShader(`exp(x)`)

	// Below 1e-5 the second-order series beats exp(x) - 1 in f32.
	expm1Shader = unaryShader(`select(exp(x) - 1.0, x + 0.5 * x * x, abs(x) < 1e-5)`)

	// tanh saturates to +-1 in f32 well before 15; clamping keeps drivers
	// that expand tanh through exp from overflowing.
	tanhShader = unaryShader(`tanh(clamp(x, -15.0, 15.0))`)

	// Abramowitz and Stegun 7.1.26, absolute error below 1.5e-7.
	erfShader = unaryHeader + `
fn erf_approx(v: f32) -> f32 {
    let s = sign(v);
    let z = abs(v);
    let t = 1.0 / (1.0 + 0.3275911 * z);
    let poly = ((((1.061405429 * t - 1.453152027) * t + 1.421413741) * t - 0.284496736) * t + 0.254829592) * t;
    return s * (1.0 - poly * exp(-z * z));
}

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        result[idx] = erf_approx(input[idx]);
    }
}
`

	// select evaluates both arms; the overflowing one is always discarded.
	sigmoidShader = unaryShader(`select(exp(x) / (1.0 + exp(x)), 1.0 / (1.0 + exp(-x)), x >= 0.0)`)

	mulScalarShader = unaryShader(`x * params.scalar`)
	addScalarShader = unaryShader(`x + params.scalar`)

	addShader     = binaryShader("", `x + y`)
	mulShader     = binaryShader("", `x * y`)
	maximumShader = binaryShader("", `max(x, y)`)
	minimumShader = binaryShader("", `min(x, y)`)

	logAddExpShader = binaryShader(`
fn log1p_approx(z: f32) -> f32 {
    return select(log(1.0 + z), z - 0.5 * z * z, z < 1e-4);
}
`, `select(max(x, y) + log1p_approx(exp(-abs(x - y))), x + 0.6931471805599453, x == y)`)
)
