package external

import "forecastsync.app/internal/core/forecast"

func plain(base forecast.BaseCondition) forecast.Condition {
	return forecast.Condition{Base: base}
}

func intensity(pos int, base forecast.BaseCondition) forecast.Condition {
	return forecast.Condition{Scale: forecast.ScaleIntensity, Position: pos, Base: base}
}

func coverage(pos int, base forecast.BaseCondition) forecast.Condition {
	return forecast.Condition{Scale: forecast.ScaleCoverage, Position: pos, Base: base}
}

func showers(c forecast.Condition) forecast.Condition {
	c.Flag = forecast.FlagShowers
	return c
}

func thunder(c forecast.Condition) forecast.Condition {
	c.Flag = forecast.FlagThunder
	return c
}

// openWeatherMapConditions maps OpenWeatherMap condition ids (2xx-8xx)
var openWeatherMapConditions = map[int]forecast.Condition{
	200: thunder(intensity(forecast.IntensityLight, forecast.BaseRain)),
	201: thunder(intensity(forecast.IntensityModerate, forecast.BaseRain)),
	202: thunder(intensity(forecast.IntensityHeavy, forecast.BaseRain)),
	210: intensity(forecast.IntensityLight, forecast.BaseThunderstorm),
	211: plain(forecast.BaseThunderstorm),
	212: intensity(forecast.IntensityHeavy, forecast.BaseThunderstorm),
	221: coverage(forecast.CoverageScattered, forecast.BaseThunderstorm),
	230: thunder(intensity(forecast.IntensityLight, forecast.BaseDrizzle)),
	231: thunder(intensity(forecast.IntensityModerate, forecast.BaseDrizzle)),
	232: thunder(intensity(forecast.IntensityHeavy, forecast.BaseDrizzle)),

	300: intensity(forecast.IntensityLight, forecast.BaseDrizzle),
	301: intensity(forecast.IntensityModerate, forecast.BaseDrizzle),
	302: intensity(forecast.IntensityHeavy, forecast.BaseDrizzle),
	310: intensity(forecast.IntensityLight, forecast.BaseDrizzle),
	311: intensity(forecast.IntensityModerate, forecast.BaseDrizzle),
	312: intensity(forecast.IntensityHeavy, forecast.BaseDrizzle),
	313: showers(intensity(forecast.IntensityModerate, forecast.BaseDrizzle)),
	314: showers(intensity(forecast.IntensityHeavy, forecast.BaseDrizzle)),
	321: showers(plain(forecast.BaseDrizzle)),

	500: intensity(forecast.IntensityLight, forecast.BaseRain),
	501: intensity(forecast.IntensityModerate, forecast.BaseRain),
	502: intensity(forecast.IntensityHeavy, forecast.BaseRain),
	503: intensity(forecast.IntensityViolent, forecast.BaseRain),
	504: intensity(forecast.IntensityViolent, forecast.BaseRain),
	511: plain(forecast.BaseFreezingRain),
	520: showers(intensity(forecast.IntensityLight, forecast.BaseRain)),
	521: showers(intensity(forecast.IntensityModerate, forecast.BaseRain)),
	522: showers(intensity(forecast.IntensityHeavy, forecast.BaseRain)),
	531: showers(coverage(forecast.CoverageScattered, forecast.BaseRain)),

	600: intensity(forecast.IntensityLight, forecast.BaseSnow),
	601: intensity(forecast.IntensityModerate, forecast.BaseSnow),
	602: intensity(forecast.IntensityHeavy, forecast.BaseSnow),
	611: plain(forecast.BaseSleet),
	612: showers(intensity(forecast.IntensityLight, forecast.BaseSleet)),
	613: showers(intensity(forecast.IntensityModerate, forecast.BaseSleet)),
	615: intensity(forecast.IntensityLight, forecast.BaseSleet),
	616: intensity(forecast.IntensityModerate, forecast.BaseSleet),
	620: showers(intensity(forecast.IntensityLight, forecast.BaseSnow)),
	621: showers(intensity(forecast.IntensityModerate, forecast.BaseSnow)),
	622: showers(intensity(forecast.IntensityHeavy, forecast.BaseSnow)),

	701: plain(forecast.BaseMist),
	711: plain(forecast.BaseSmoke),
	721: plain(forecast.BaseHaze),
	731: plain(forecast.BaseDust),
	741: plain(forecast.BaseFog),
	751: plain(forecast.BaseSand),
	761: plain(forecast.BaseDust),
	762: plain(forecast.BaseAsh),
	771: plain(forecast.BaseSquall),
	781: plain(forecast.BaseTornado),

	800: plain(forecast.BaseClear),
	801: coverage(forecast.CoverageFew, forecast.BaseClouds),
	802: coverage(forecast.CoverageScattered, forecast.BaseClouds),
	803: coverage(forecast.CoverageBroken, forecast.BaseClouds),
	804: coverage(forecast.CoverageOvercast, forecast.BaseClouds),
}

// weatherAPIConditions maps WeatherAPI.com condition codes (1000-1282)
var weatherAPIConditions = map[int]forecast.Condition{
	1000: plain(forecast.BaseClear),
	1003: coverage(forecast.CoverageScattered, forecast.BaseClouds),
	1006: coverage(forecast.CoverageBroken, forecast.BaseClouds),
	1009: coverage(forecast.CoverageOvercast, forecast.BaseClouds),
	1030: plain(forecast.BaseMist),
	1063: coverage(forecast.CoverageScattered, forecast.BaseRain),
	1066: coverage(forecast.CoverageScattered, forecast.BaseSnow),
	1069: coverage(forecast.CoverageScattered, forecast.BaseSleet),
	1072: coverage(forecast.CoverageScattered, forecast.BaseFreezingDrizzle),
	1087: coverage(forecast.CoverageScattered, forecast.BaseThunderstorm),
	1114: plain(forecast.BaseSnow),
	1117: intensity(forecast.IntensityViolent, forecast.BaseSnow),
	1135: plain(forecast.BaseFog),
	1147: plain(forecast.BaseFog),
	1150: intensity(forecast.IntensityLight, forecast.BaseDrizzle),
	1153: intensity(forecast.IntensityLight, forecast.BaseDrizzle),
	1168: intensity(forecast.IntensityModerate, forecast.BaseFreezingDrizzle),
	1171: intensity(forecast.IntensityHeavy, forecast.BaseFreezingDrizzle),
	1180: intensity(forecast.IntensityLight, forecast.BaseRain),
	1183: intensity(forecast.IntensityLight, forecast.BaseRain),
	1186: intensity(forecast.IntensityModerate, forecast.BaseRain),
	1189: intensity(forecast.IntensityModerate, forecast.BaseRain),
	1192: intensity(forecast.IntensityHeavy, forecast.BaseRain),
	1195: intensity(forecast.IntensityHeavy, forecast.BaseRain),
	1198: intensity(forecast.IntensityLight, forecast.BaseFreezingRain),
	1201: intensity(forecast.IntensityHeavy, forecast.BaseFreezingRain),
	1204: intensity(forecast.IntensityLight, forecast.BaseSleet),
	1207: intensity(forecast.IntensityHeavy, forecast.BaseSleet),
	1210: intensity(forecast.IntensityLight, forecast.BaseSnow),
	1213: intensity(forecast.IntensityLight, forecast.BaseSnow),
	1216: intensity(forecast.IntensityModerate, forecast.BaseSnow),
	1219: intensity(forecast.IntensityModerate, forecast.BaseSnow),
	1222: intensity(forecast.IntensityHeavy, forecast.BaseSnow),
	1225: intensity(forecast.IntensityHeavy, forecast.BaseSnow),
	1237: plain(forecast.BaseIcePellets),
	1240: showers(intensity(forecast.IntensityLight, forecast.BaseRain)),
	1243: showers(intensity(forecast.IntensityHeavy, forecast.BaseRain)),
	1246: showers(intensity(forecast.IntensityViolent, forecast.BaseRain)),
	1249: showers(intensity(forecast.IntensityLight, forecast.BaseSleet)),
	1252: showers(intensity(forecast.IntensityHeavy, forecast.BaseSleet)),
	1255: showers(intensity(forecast.IntensityLight, forecast.BaseSnow)),
	1258: showers(intensity(forecast.IntensityHeavy, forecast.BaseSnow)),
	1261: showers(intensity(forecast.IntensityLight, forecast.BaseIcePellets)),
	1264: showers(intensity(forecast.IntensityHeavy, forecast.BaseIcePellets)),
	1273: thunder(intensity(forecast.IntensityLight, forecast.BaseRain)),
	1276: thunder(intensity(forecast.IntensityHeavy, forecast.BaseRain)),
	1279: thunder(intensity(forecast.IntensityLight, forecast.BaseSnow)),
	1282: thunder(intensity(forecast.IntensityHeavy, forecast.BaseSnow)),
}

// wmoConditions maps WMO weather interpretation codes (0-99) used by Open-Meteo
var wmoConditions = map[int]forecast.Condition{
	0:  plain(forecast.BaseClear),
	1:  coverage(forecast.CoverageFew, forecast.BaseClouds),
	2:  coverage(forecast.CoverageScattered, forecast.BaseClouds),
	3:  coverage(forecast.CoverageOvercast, forecast.BaseClouds),
	45: plain(forecast.BaseFog),
	48: plain(forecast.BaseFog),
	51: intensity(forecast.IntensityLight, forecast.BaseDrizzle),
	53: intensity(forecast.IntensityModerate, forecast.BaseDrizzle),
	55: intensity(forecast.IntensityHeavy, forecast.BaseDrizzle),
	56: intensity(forecast.IntensityLight, forecast.BaseFreezingDrizzle),
	57: intensity(forecast.IntensityHeavy, forecast.BaseFreezingDrizzle),
	61: intensity(forecast.IntensityLight, forecast.BaseRain),
	63: intensity(forecast.IntensityModerate, forecast.BaseRain),
	65: intensity(forecast.IntensityHeavy, forecast.BaseRain),
	66: intensity(forecast.IntensityLight, forecast.BaseFreezingRain),
	67: intensity(forecast.IntensityHeavy, forecast.BaseFreezingRain),
	71: intensity(forecast.IntensityLight, forecast.BaseSnow),
	73: intensity(forecast.IntensityModerate, forecast.BaseSnow),
	75: intensity(forecast.IntensityHeavy, forecast.BaseSnow),
	77: plain(forecast.BaseSnowGrains),
	80: showers(intensity(forecast.IntensityLight, forecast.BaseRain)),
	81: showers(intensity(forecast.IntensityModerate, forecast.BaseRain)),
	82: showers(intensity(forecast.IntensityViolent, forecast.BaseRain)),
	85: showers(intensity(forecast.IntensityLight, forecast.BaseSnow)),
	86: showers(intensity(forecast.IntensityHeavy, forecast.BaseSnow)),
	95: plain(forecast.BaseThunderstorm),
	96: thunder(intensity(forecast.IntensityLight, forecast.BaseHail)),
	99: thunder(intensity(forecast.IntensityHeavy, forecast.BaseHail)),
}

// weatherCode encodes a provider code through its vocabulary; unmapped codes become unknown
func weatherCode(vocabulary map[int]forecast.Condition, code int) forecast.WeatherCode {
	c, ok := vocabulary[code]
	if !ok {
		c = forecast.UnknownCondition
	}
	return forecast.MustEncode(c)
}
