package utils

import "math"

// WGS-84 ellipsoid parameters.
const (
	semiMajorAxis = 6378137.0         // meter
	flattening    = 1 / 298.257223563 //
	semiMinorAxis = semiMajorAxis * (1 - flattening)
)

// GeodesicDistance menghitung jarak geodesik antara dua titik koordinat dalam
// Meter di atas ellipsoid WGS-84 (formula inverse Vincenty). Lebih akurat
// daripada Haversine karena memperhitungkan bentuk bumi yang tidak bulat
// sempurna.
func GeodesicDistance(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}

	phi1 := lat1 * (math.Pi / 180.0)
	phi2 := lat2 * (math.Pi / 180.0)
	L := (lon2 - lon1) * (math.Pi / 180.0)

	// Reduced latitudes
	U1 := math.Atan((1 - flattening) * math.Tan(phi1))
	U2 := math.Atan((1 - flattening) * math.Tan(phi2))
	sinU1, cosU1 := math.Sincos(U1)
	sinU2, cosU2 := math.Sincos(U2)

	lambda := L
	var sinSigma, cosSigma, sigma, sinAlpha, cosSqAlpha, cos2SigmaM float64

	// Vincenty biasanya konvergen dalam <10 iterasi
	for i := 0; i < 200; i++ {
		sinLambda, cosLambda := math.Sincos(lambda)

		sinSigma = math.Sqrt(
			math.Pow(cosU2*sinLambda, 2) +
				math.Pow(cosU1*sinU2-sinU1*cosU2*cosLambda, 2),
		)
		if sinSigma == 0 {
			return 0 // coincident points
		}
		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)

		sinAlpha = cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha = 1 - sinAlpha*sinAlpha
		if cosSqAlpha == 0 {
			cos2SigmaM = 0 // equatorial line
		} else {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		}

		C := flattening / 16 * cosSqAlpha * (4 + flattening*(4-3*cosSqAlpha))
		lambdaPrev := lambda
		lambda = L + (1-C)*flattening*sinAlpha*
			(sigma+C*sinSigma*(cos2SigmaM+C*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))

		if math.Abs(lambda-lambdaPrev) < 1e-12 {
			break
		}
	}

	uSq := cosSqAlpha * (semiMajorAxis*semiMajorAxis - semiMinorAxis*semiMinorAxis) / (semiMinorAxis * semiMinorAxis)
	A := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	B := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	deltaSigma := B * sinSigma * (cos2SigmaM + B/4*
		(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
			B/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))

	return semiMinorAxis * A * (sigma - deltaSigma)
}
