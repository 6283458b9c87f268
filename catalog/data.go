package catalog

// rawDisciplines mirrors WMO GRIB2 Code Tables 0.0, 4.1, and 4.2. It is the
// build-time input to Build/Default; runtime lookups never touch this data
// directly, only the compiled Catalog.
var rawDisciplines = []rawDiscipline{
	{
		ID: 0, Name: "Meteorological Products",
		Categories: []rawCategory{
			{
				ID: 0, Name: "Temperature",
				Parameters: []rawParameter{
					{0, "Temperature", "K", "TMP"},
					{1, "Virtual Temperature", "K", "VTMP"},
					{2, "Potential Temperature", "K", "POT"},
					{3, "Pseudo-Adiabatic Potential Temperature", "K", "EPOT"},
					{4, "Maximum Temperature", "K", "TMAX"},
					{5, "Minimum Temperature", "K", "TMIN"},
					{6, "Dew Point Temperature", "K", "DPT"},
					{7, "Dew Point Depression", "K", "DEPR"},
					{8, "Lapse Rate", "K/m", "LAPR"},
					{9, "Temperature Anomaly", "K", "TMPA"},
					{10, "Latent Heat Net Flux", "W/m2", "LHTFL"},
					{11, "Sensible Heat Net Flux", "W/m2", "SHTFL"},
					{12, "Heat Index", "K", "HEATX"},
					{13, "Wind Chill Factor", "K", "WCF"},
					{14, "Minimum Dew Point Depression", "K", "MINDPD"},
					{15, "Virtual Potential Temperature", "K", "VPTMP"},
					{16, "Snow Phase Change Heat Flux", "W/m2", "SNOHF"},
					{17, "Skin Temperature", "K", "SKINT"},
					{18, "Snow Temperature", "K", "SNOT"},
					{19, "Turbulent Transfer Coefficient For Heat", "Numeric", "TTCHT"},
					{20, "Turbulent Diffusion Coefficient For Heat", "m2/s", "TDCHT"},
					{21, "Apparent Temperature", "K", "APTMP"},
					{22, "Temperature Tendency By All Radiation", "K/s", "TTRAD"},
					{23, "Relative Error Variance", "Numeric", "REV"},
					{24, "Large Scale Condensate Heating Rate", "K/s", "LRGHR"},
					{25, "Deep Convective Heating Rate", "K/s", "CNVHR"},
					{26, "Total Downward Heat Flux At Surface", "W/m2", "THFLX"},
					{27, "Temperature Advection", "K/s", "TTDIA"},
					{28, "Latent Heat Of Evaporation", "J/kg", "LHEVAP"},
					{192, "Snow Phase Change Heat Flux (Local)", "W/m2", "SNOHF2"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 1, Name: "Moisture",
				Parameters: []rawParameter{
					{0, "Specific Humidity", "kg/kg", "SPFH"},
					{1, "Relative Humidity", "%", "RH"},
					{2, "Humidity Mixing Ratio", "kg/kg", "MIXR"},
					{3, "Precipitable Water", "kg/m2", "PWAT"},
					{4, "Vapor Pressure", "Pa", "VAPP"},
					{5, "Saturation Deficit", "Pa", "SATD"},
					{6, "Evaporation", "kg/m2", "EVP"},
					{7, "Precipitation Rate", "kg/(m2 s)", "PRATE"},
					{8, "Total Precipitation", "kg/m2", "APCP"},
					{9, "Large-Scale Precipitation (Non-Convective)", "kg/m2", "NCPCP"},
					{10, "Convective Precipitation", "kg/m2", "ACPCP"},
					{11, "Snow Depth", "m", "SNOD"},
					{12, "Snowfall Rate Water Equivalent", "kg/(m2 s)", "SRWEQ"},
					{13, "Water Equivalent Of Accumulated Snow Depth", "kg/m2", "WEASD"},
					{14, "Convective Snow", "kg/m2", "SNOC"},
					{15, "Large Scale Snow", "kg/m2", "SNOL"},
					{16, "Snow Melt", "kg/m2", "SNOM"},
					{17, "Snow Age", "day", "SNOAG"},
					{18, "Absolute Humidity", "kg/m3", "ABSH"},
					{19, "Precipitation Type", "Code table 4.201", "PTYPE"},
					{20, "Integrated Liquid Water", "kg/m2", "ILIQW"},
					{21, "Condensate", "kg/kg", "TCOND"},
					{22, "Cloud Mixing Ratio", "kg/kg", "CLWMR"},
					{23, "Ice Water Mixing Ratio", "kg/kg", "ICMR"},
					{24, "Rain Mixing Ratio", "kg/kg", "RWMR"},
					{25, "Snow Mixing Ratio", "kg/kg", "SNMR"},
					{26, "Horizontal Moisture Convergence", "kg/(kg s)", "MCONV"},
					{27, "Maximum Relative Humidity", "%", "MAXRH"},
					{28, "Maximum Absolute Humidity", "kg/m3", "MAXAH"},
					{29, "Total Snowfall", "m", "ASNOW"},
					{30, "Precipitable Water Category", "see Table 4.202", "PWCAT"},
					{31, "Hail", "m", "HAIL"},
					{32, "Graupel", "kg/kg", "GRLE"},
					{33, "Categorical Rain", "Code table 4.222", "CRAIN"},
					{34, "Categorical Freezing Rain", "Code table 4.222", "CFRZR"},
					{35, "Categorical Ice Pellets", "Code table 4.222", "CICEP"},
					{36, "Categorical Snow", "Code table 4.222", "CSNOW"},
					{37, "Convective Precipitation Rate", "kg/(m2 s)", "CPRAT"},
					{38, "Horizontal Moisture Divergence", "kg/(kg s)", "MDIV"},
					{39, "Percent Frozen Precipitation", "%", "CPOFP"},
					{40, "Potential Evaporation", "kg/m2", "PEVAP"},
					{41, "Potential Evaporation Rate", "W/m2", "PEVPR"},
					{42, "Snow Cover", "%", "SNOWC"},
					{43, "Rain Fraction Of Total Cloud Water", "Proportion", "RPRATE"},
					{44, "Rime Factor", "Numeric", "RIME"},
					{45, "Total Column Integrated Rain", "kg/m2", "TCOLR"},
					{46, "Total Column Integrated Snow", "kg/m2", "TCOLS"},
					{192, "Categorical Rain (Local)", "Code table 4.222", "CRAIN2"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 2, Name: "Momentum",
				Parameters: []rawParameter{
					{0, "Wind Direction", "deg true", "WDIR"},
					{1, "Wind Speed", "m/s", "WIND"},
					{2, "U-Component Of Wind", "m/s", "UGRD"},
					{3, "V-Component Of Wind", "m/s", "VGRD"},
					{4, "Stream Function", "m2/s", "STRM"},
					{5, "Velocity Potential", "m2/s", "VPOT"},
					{6, "Montgomery Stream Function", "m2/s2", "MNTSF"},
					{7, "Sigma Coordinate Vertical Velocity", "1/s", "SGCVV"},
					{8, "Vertical Velocity (Pressure)", "Pa/s", "VVEL"},
					{9, "Vertical Velocity (Geometric)", "m/s", "DZDT"},
					{10, "Absolute Vorticity", "1/s", "ABSV"},
					{11, "Absolute Divergence", "1/s", "ABSD"},
					{12, "Relative Vorticity", "1/s", "RELV"},
					{13, "Relative Divergence", "1/s", "RELD"},
					{14, "Potential Vorticity", "K m2/(kg s)", "PVORT"},
					{15, "Covariance Between U And V Components Of Wind", "m2/s2", "COVMZ"},
					{16, "Covariance Between U Component Of Wind And Temperature", "K*m/s", "COVTZ"},
					{17, "Covariance Between V Component Of Wind And Temperature", "K*m/s", "COVTM"},
					{18, "Speed Of Flight Level Wind", "m/s", "SPD"},
					{19, "Wind Direction Tendency", "deg/s", "WDIRT"},
					{20, "U-Component Storm Motion", "m/s", "USTM"},
					{21, "V-Component Storm Motion", "m/s", "VSTM"},
					{22, "Wind Gust", "m/s", "GUST"},
					{23, "Wind Fetch", "m", "WINDF"},
					{24, "Surface Momentum Flux", "N/m2", "MFLX"},
					{25, "U-Component Of Supergradient Wind", "m/s", "USCT"},
					{26, "V-Component Of Supergradient Wind", "m/s", "VSCT"},
					{192, "Vertical Speed Shear", "1/s", "VWSH"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 3, Name: "Mass",
				Parameters: []rawParameter{
					{0, "Pressure", "Pa", "PRES"},
					{1, "Pressure Reduced To MSL", "Pa", "PRMSL"},
					{2, "Pressure Tendency", "Pa/s", "PTEND"},
					{3, "ICAO Standard Atmosphere Reference Height", "m", "ICAHT"},
					{4, "Geopotential", "m2/s2", "GP"},
					{5, "Geopotential Height", "gpm", "HGT"},
					{6, "Geometric Height", "m", "DIST"},
					{7, "Standard Deviation Of Height", "m", "HSTDV"},
					{8, "Pressure Anomaly", "Pa", "PRESA"},
					{9, "Geopotential Height Anomaly", "gpm", "GPA"},
					{10, "Density", "kg/m3", "DEN"},
					{11, "Altimeter Setting", "Pa", "ALTS"},
					{12, "Thickness", "m", "THICK"},
					{13, "Pressure Altitude", "m", "PRESALT"},
					{14, "Density Altitude", "m", "DENALT"},
					{15, "5-Wave Geopotential Height", "gpm", "5WAVH"},
					{16, "Zonal Flux Of Gravity Wave Stress", "N/m2", "U-GWD"},
					{17, "Meridional Flux Of Gravity Wave Stress", "N/m2", "V-GWD"},
					{18, "Planetary Boundary Layer Height", "m", "HPBL"},
					{19, "5-Wave Geopotential Height Anomaly", "gpm", "5WAVA"},
					{20, "Standard Deviation Of Sub-Gridscale Orography", "m", "SDSGSO"},
					{21, "Angle Of Sub-Gridscale Orography", "rad", "AOSGSO"},
					{22, "Slope Of Sub-Gridscale Orography", "Numeric", "SLOPSGSO"},
					{23, "Gravity Anomaly Due To Sub-Gridscale Orography", "Numeric", "GWDSGSO"},
					{24, "Maximum Elevation Of Sub-Gridscale Orography", "m", "MXOSGSO"},
					{25, "Minimum Elevation Of Sub-Gridscale Orography", "m", "MNOSGSO"},
					{192, "Mean Sea Level Pressure (Nam Reduction)", "Pa", "MSLET"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 4, Name: "Short-Wave Radiation",
				Parameters: []rawParameter{
					{0, "Net Short-Wave Radiation Flux (Surface)", "W/m2", "NSWRS"},
					{1, "Net Short-Wave Radiation Flux (Top Of Atmosphere)", "W/m2", "NSWRT"},
					{2, "Short Wave Radiation Flux", "W/m2", "SWAVR"},
					{3, "Global Radiation Flux", "W/m2", "GRAD"},
					{4, "Brightness Temperature", "K", "BRTMP"},
					{5, "Radiance (With Respect To Wave Number)", "W/m sr", "RADPOW"},
					{6, "Radiance (With Respect To Wave Length)", "W/(m3 sr)", "RADPOL"},
					{7, "Downward Short-Wave Radiation Flux", "W/m2", "DSWRF"},
					{8, "Upward Short-Wave Radiation Flux", "W/m2", "USWRF"},
					{9, "Net Short Wave Radiation Flux", "W/m2", "NSWRF"},
					{10, "Photosynthetically Active Radiation", "W/m2", "PHOTAR"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 5, Name: "Long-Wave Radiation",
				Parameters: []rawParameter{
					{0, "Net Long-Wave Radiation Flux (Surface)", "W/m2", "NLWRS"},
					{1, "Net Long-Wave Radiation Flux (Top Of Atmosphere)", "W/m2", "NLWRT"},
					{2, "Long-Wave Radiation Flux", "W/m2", "LWAVR"},
					{3, "Downward Long-Wave Radiation Flux", "W/m2", "DLWRF"},
					{4, "Upward Long-Wave Radiation Flux", "W/m2", "ULWRF"},
					{5, "Net Long-Wave Radiation Flux", "W/m2", "NLWRF"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 6, Name: "Cloud",
				Parameters: []rawParameter{
					{0, "Cloud Ice", "kg/m2", "CICE"},
					{1, "Total Cloud Cover", "%", "TCDC"},
					{2, "Convective Cloud Cover", "%", "CDCON"},
					{3, "Low Cloud Cover", "%", "LCDC"},
					{4, "Medium Cloud Cover", "%", "MCDC"},
					{5, "High Cloud Cover", "%", "HCDC"},
					{6, "Cloud Water", "kg/m2", "CWAT"},
					{7, "Cloud Amount", "%", "CDCA"},
					{8, "Cloud Type", "Code table 4.203", "CDCT"},
					{9, "Thunderstorm Maximum Tops", "m", "TMAXT"},
					{10, "Thunderstorm Coverage", "Code table 4.204", "THUNC"},
					{11, "Cloud Base", "m", "CDBASE"},
					{12, "Cloud Top", "m", "CDTOP"},
					{13, "Ceiling", "m", "CEIL"},
					{14, "Non-Convective Cloud Cover", "%", "CDLYR"},
					{15, "Cloud Work Function", "J/kg", "CWORK"},
					{16, "Convective Cloud Efficiency", "Proportion", "CUEFI"},
					{17, "Total Condensate", "kg/kg", "TCOND2"},
					{18, "Total Column-Integrated Cloud Water", "kg/m2", "TCOLW"},
					{19, "Total Column-Integrated Cloud Ice", "kg/m2", "TCOLI"},
					{20, "Ice Fraction Of Total Condensate", "Proportion", "FICE"},
					{21, "Cloud Cover", "%", "CDCC"},
					{22, "Cloud Ice Mixing Ratio", "kg/kg", "CIMIXR"},
					{23, "Sunshine Duration", "s", "SUNSD"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 7, Name: "Thermodynamic Stability Indices",
				Parameters: []rawParameter{
					{0, "Parcel Lifted Index (To 500 Hpa)", "K", "PLI"},
					{1, "Best Lifted Index (To 500 Hpa)", "K", "BLI"},
					{2, "K Index", "K", "KX"},
					{3, "KO Index", "K", "KOX"},
					{4, "Total Totals Index", "K", "TOTALX"},
					{5, "Sweat Index", "Numeric", "SWEATX"},
					{6, "Convective Available Potential Energy", "J/kg", "CAPE"},
					{7, "Convective Inhibition", "J/kg", "CIN"},
					{8, "Storm Relative Helicity", "m2/s2", "HLCY"},
					{9, "Energy Helicity Index", "Numeric", "EHLX"},
					{10, "Surface Lifted Index", "K", "LFTX"},
					{11, "Best (4 Layer) Lifted Index", "K", "4LFTX"},
					{12, "Richardson Number", "Numeric", "RI"},
					{13, "Showalter Index", "K", "SHWINX"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 13, Name: "Aerosols",
				Parameters: []rawParameter{
					{0, "Aerosol Type", "Code table 4.205", "AEROT"},
					{192, "Particulate Matter (Coarse)", "kg/m3", "PMTC"},
					{193, "Particulate Matter (Fine)", "kg/m3", "PMTF"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 14, Name: "Trace Gases",
				Parameters: []rawParameter{
					{0, "Total Ozone", "DU", "TOZNE"},
					{1, "Ozone Mixing Ratio", "kg/kg", "O3MR"},
					{192, "Ozone Mixing Ratio (Local)", "kg/kg", "OZMR2"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 15, Name: "Radar",
				Parameters: []rawParameter{
					{0, "Base Spectrum Width", "m/s", "BSWID"},
					{1, "Base Reflectivity", "dB", "BREF"},
					{2, "Base Radial Velocity", "m/s", "BRVEL"},
					{3, "Vertically-Integrated Liquid", "kg/m", "VIL"},
					{4, "Layer-Maximum Base Reflectivity", "dB", "LMAXBR"},
					{5, "Precipitation", "kg/m2", "PREC"},
					{6, "Radar Spectra (1)", "-", "RDSP1"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 16, Name: "Forecast Radar Imagery",
				Parameters: []rawParameter{
					{0, "Equivalent Radar Reflectivity Factor For Rain", "mm6/m3", "REFZR"},
					{1, "Equivalent Radar Reflectivity Factor For Snow", "mm6/m3", "REFZI"},
					{2, "Equivalent Radar Reflectivity Factor For Parameterized Convection", "mm6/m3", "REFZC"},
					{3, "Composite Reflectivity", "dB", "REFC"},
					{4, "Echo Top", "m", "RETOP"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 17, Name: "Electrodynamics",
				Parameters: []rawParameter{
					{0, "Lightning Strike Density", "1/(km2 day)", "LTNGSD"},
					{1, "Cloud-To-Ground Lightning Flash Density", "1/(km2 day)", "LTNGCG"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 18, Name: "Nuclear/Radiology",
				Parameters: []rawParameter{
					{0, "Air Concentration Of Caesium 137", "Bq/m3", "ACCES"},
					{1, "Air Concentration Of Iodine 131", "Bq/m3", "ACIOD"},
					{2, "Air Concentration Of Radioactive Pollutant", "Bq/m3", "ACRADP"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 19, Name: "Physical Atmospheric Properties",
				Parameters: []rawParameter{
					{0, "Visibility", "m", "VIS"},
					{1, "Albedo", "%", "ALBDO"},
					{2, "Thunderstorm Probability", "%", "TSTM"},
					{3, "Mixed Layer Depth", "m", "MIXHT"},
					{4, "Volcanic Ash", "Code table 4.206", "VOLASH"},
					{5, "Icing Top", "m", "ICIT"},
					{6, "Icing Base", "m", "ICIB"},
					{7, "Icing", "Code table 4.207", "ICI"},
					{8, "Turbulence Top", "m", "TURBT"},
					{9, "Turbulence Base", "m", "TURBB"},
					{10, "Turbulence", "Code table 4.208", "TURB"},
					{11, "Turbulent Kinetic Energy", "J/kg", "TKE"},
					{12, "Planetary Boundary Layer Regime", "Code table 4.209", "PBLREG"},
					{13, "Contrail Intensity", "Code table 4.210", "CONTI"},
					{14, "Contrail Engine Type", "Code table 4.211", "CONTET"},
					{15, "Contrail Top", "m", "CONTT"},
					{16, "Contrail Base", "m", "CONTB"},
					{17, "Maximum Snow Albedo", "%", "MXSALB"},
					{18, "Snow-Free Albedo", "%", "SNFALB"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 190, Name: "CCITT IA5 String",
				Parameters: []rawParameter{
					{0, "Arbitrary Text String", "CCITT IA5", "ATEXT"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 191, Name: "Miscellaneous",
				Parameters: []rawParameter{
					{0, "Latitude (-90 To 90)", "deg", "NLAT"},
					{1, "Longitude (0 To 360)", "deg", "ELON"},
					{2, "Seconds Prior To Initial Reference Time", "s", "TSEC"},
					{3, "Model Identification", "Numeric", "MODEL"},
					{192, "Ensemble Size", "Numeric", "ENSSZE"},
					{255, "Missing", "", "MISS"},
				},
			},
		},
	},
	{
		ID: 1, Name: "Hydrological Products",
		Categories: []rawCategory{
			{
				ID: 0, Name: "Hydrology Basic Products",
				Parameters: []rawParameter{
					{0, "Flash Flood Guidance", "kg/m2", "FFLDG"},
					{1, "Flash Flood Runoff", "kg/m2", "FFLDRO"},
					{2, "Remotely Sensed Snow Cover", "see Code Table 4.215", "RSSC"},
					{3, "Elevation Zone Snow Cover", "see Code Table 4.216", "ESCT"},
					{4, "Baseflow-Groundwater Runoff", "kg/m2", "BGRUN"},
					{5, "Storm Surface Runoff", "kg/m2", "SSRUN"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 1, Name: "Hydrology Probabilities",
				Parameters: []rawParameter{
					{0, "Conditional Percent Precipitation Amount Fractile", "kg/m2", "CPPOP"},
					{1, "Percent Precipitation In A Sub-Period Of An Overall Period", "%", "PPOSP"},
					{2, "Probability Of 0.01 Inch Of Precipitation", "%", "POP"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 2, Name: "Inland Water And Sediment Properties",
				Parameters: []rawParameter{
					{0, "Water Depth", "m", "WDPTHIL"},
					{1, "Water Temperature", "K", "WTMPIL"},
					{2, "Water Fraction", "Proportion", "WFRACT"},
					{3, "Sediment Thickness", "m", "SEDTK"},
					{255, "Missing", "", "MISS"},
				},
			},
		},
	},
	{
		ID: 2, Name: "Land Surface Products",
		Categories: []rawCategory{
			{
				ID: 0, Name: "Vegetation/Biomass",
				Parameters: []rawParameter{
					{0, "Land Cover (1=Land, 0=Sea)", "Proportion", "LAND"},
					{1, "Surface Roughness", "m", "SFCR"},
					{2, "Soil Temperature", "K", "TSOIL2"},
					{3, "Soil Moisture Content", "kg/m2", "SOILM2"},
					{4, "Vegetation", "%", "VEG"},
					{5, "Water Runoff", "kg/m2", "WATR"},
					{6, "Surface Water Runoff", "kg/m2", "SFCRUN"},
					{7, "Normalized Differential Vegetation Index", "Numeric", "NDVI"},
					{8, "Land-Sea Coverage (Nearest Neighbor)", "Proportion", "LANDN"},
					{9, "Minimal Stomatal Resistance", "s/m", "RSMIN"},
					{10, "Solar Parameter In Canopy", "Proportion", "RCS"},
					{11, "Temperature Parameter In Canopy", "Proportion", "RCT"},
					{12, "Humidity Parameter In Canopy", "Proportion", "RCQ"},
					{13, "Soil Moisture Parameter In Canopy", "Proportion", "RCSOL"},
					{14, "Plant Canopy Surface Water", "kg/m2", "CANPMW"},
					{15, "Blackadar's Mixing Length Scale", "m", "BMIXL"},
					{16, "Canopy Conductance", "m/s", "CCOND"},
					{17, "Minimal Stomatal Resistance", "s/m", "RSMIN2"},
					{18, "Wilting Point", "Proportion", "WILT"},
					{19, "Ground Heat Flux", "W/m2", "GHFLX"},
					{20, "Moisture Availability", "%", "MSTAV"},
					{21, "Exchange Coefficient", "kg/(m2 s)", "SFEXC"},
					{22, "Plant Canopy Surface Water", "kg/m2", "CNWAT"},
					{23, "Leaf Area Index", "Numeric", "LAI"},
					{24, "Precipitation Advected Heat Flux", "W/m2", "PAHF"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 1, Name: "Agricultural/Aquacultural Special Products",
				Parameters: []rawParameter{
					{0, "Cold Plant Canopy", "Code table 4.212", "CCPCP"},
					{1, "Vegetation Type", "Code table 4.213", "VGTYP"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 3, Name: "Soil Products",
				Parameters: []rawParameter{
					{0, "Soil Type", "Code table 4.213", "SOTYP"},
					{1, "Upper Layer Soil Temperature", "K", "UPLST"},
					{2, "Upper Layer Soil Moisture", "kg/m3", "UPLSM"},
					{3, "Lower Layer Soil Moisture", "kg/m3", "LOWLSM"},
					{4, "Bottom Layer Soil Temperature", "K", "BOTLST"},
					{5, "Liquid Volumetric Soil Moisture (Non-Frozen)", "Proportion", "SOILL"},
					{6, "Number Of Soil Layers In Root Zone", "Non-Dim", "RLYRS"},
					{7, "Transpiration Stress-Onset (Soil Moisture)", "Proportion", "SMREF"},
					{8, "Direct Evaporation Cease (Soil Moisture)", "Proportion", "SMDRY"},
					{9, "Soil Porosity", "Proportion", "POROS"},
					{10, "Liquid Volumetric Soil Moisture (Non-Frozen)", "Proportion", "LIQVSM"},
					{11, "Volumetric Soil Moisture Content", "Proportion", "VOLSM"},
					{12, "Transpiration Stress-Onset (Soil Moisture)", "Proportion", "SMREF2"},
					{13, "Direct Evaporation Cease (Soil Moisture)", "Proportion", "SMDRY2"},
					{14, "Soil Porosity", "Proportion", "POROS2"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 4, Name: "Fire Weather Products",
				Parameters: []rawParameter{
					{0, "Fire Outlook", "Code table 4.224", "FIREOLK"},
					{1, "Fire Outlook Due To Dry Thunderstorm", "Code table 4.225", "FIREODT"},
					{2, "Haines Index", "Numeric", "HINDEX"},
					{255, "Missing", "", "MISS"},
				},
			},
		},
	},
	{
		ID: 3, Name: "Space Products",
		Categories: []rawCategory{
			{
				ID: 0, Name: "Image Format Products",
				Parameters: []rawParameter{
					{0, "Scaled Radiance", "Numeric", "SRAD"},
					{1, "Scaled Albedo", "Numeric", "SALBDO"},
					{2, "Scaled Brightness Temperature", "Numeric", "SBTMP"},
					{3, "Scaled Precipitable Water", "Numeric", "SPWAT"},
					{4, "Scaled Lifted Index", "Numeric", "SLFTI"},
					{5, "Scaled Cloud Top Pressure", "Numeric", "SCTPRES"},
					{6, "Scaled Skin Temperature", "Numeric", "SSTMP"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 1, Name: "Quantitative",
				Parameters: []rawParameter{
					{0, "Estimated Precipitation", "kg/m2", "ESTP"},
					{1, "Instantaneous Rain Rate", "kg/(m2 s)", "IRRATE"},
					{2, "Cloud Top Height", "m", "CTOPH"},
					{3, "Cloud Top Height Quality Indicator", "Code table 4.217", "CTOPHQI"},
					{4, "Estimated U-Component Of Wind", "m/s", "ESTUGRD"},
					{5, "Estimated V-Component Of Wind", "m/s", "ESTVGRD"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 2, Name: "Cloud Properties",
				Parameters: []rawParameter{
					{0, "Cloud Top Pressure", "Pa", "CLDTP"},
					{1, "Cloud Top Temperature", "K", "CLDTT"},
					{2, "Cloud Type", "Code table 4.218", "CLDT"},
					{3, "Estimated Cloud Top Height", "m", "ECLDT"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 3, Name: "Flight Rules Conditions",
				Parameters: []rawParameter{
					{0, "Flight Rule Conditions", "Code table 4.219", "FLGHT"},
					{1, "Ceiling And Visibility OK (CVOK)", "Code table 4.220", "CVOK"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 4, Name: "Volcanic Ash",
				Parameters: []rawParameter{
					{0, "Volcanic Ash Probability", "%", "VAFTAD"},
					{1, "Volcanic Ash Cloud", "Code table 4.221", "VACDT"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 5, Name: "Sea-Surface Temperature Products",
				Parameters: []rawParameter{
					{0, "Skin Temperature", "K", "SSTSK"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 6, Name: "Solar Products",
				Parameters: []rawParameter{
					{0, "Downward Solar Radiation", "W/m2", "DSOLRAD"},
					{255, "Missing", "", "MISS"},
				},
			},
		},
	},
	{
		ID: 4, Name: "Space Weather Products",
		Categories: []rawCategory{
			{
				ID: 0, Name: "Temperature",
				Parameters: []rawParameter{
					{0, "Temperature", "K", "SWXTMP"},
					{1, "Electron Temperature", "K", "ELECTMP"},
					{2, "Proton Temperature", "K", "PROTTMP"},
					{3, "Ion Temperature", "K", "IONTMP"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 1, Name: "Momentum",
				Parameters: []rawParameter{
					{0, "Velocity Magnitude (Speed)", "m/s", "SPEED"},
					{1, "1st Vector Component Of Velocity (Coordinate System Dependent)", "m/s", "VEL1"},
					{2, "2nd Vector Component Of Velocity (Coordinate System Dependent)", "m/s", "VEL2"},
					{3, "3rd Vector Component Of Velocity (Coordinate System Dependent)", "m/s", "VEL3"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 2, Name: "Charged Particle Mass And Number",
				Parameters: []rawParameter{
					{0, "Particle Flux (Uni-Directional)", "1/(m2 s sr)", "PTOFLX"},
					{1, "Particle Flux (Omni-Directional)", "1/(m2 s)", "PTOFLXOD"},
					{2, "Particle Energy Density", "eV/m3", "PTEDEN"},
					{3, "Proton Flux", "1/(m2 s sr)", "PTFP"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 3, Name: "Electric And Magnetic Fields",
				Parameters: []rawParameter{
					{0, "1st Vector Component Of Electric Field (Coordinate System Dependent)", "V/m", "EFLD1"},
					{1, "2nd Vector Component Of Electric Field (Coordinate System Dependent)", "V/m", "EFLD2"},
					{2, "3rd Vector Component Of Electric Field (Coordinate System Dependent)", "V/m", "EFLD3"},
					{3, "1st Vector Component Of Magnetic Field (Coordinate System Dependent)", "T", "BFLD1"},
					{4, "2nd Vector Component Of Magnetic Field (Coordinate System Dependent)", "T", "BFLD2"},
					{5, "3rd Vector Component Of Magnetic Field (Coordinate System Dependent)", "T", "BFLD3"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 4, Name: "Energetic Particles",
				Parameters: []rawParameter{
					{0, "Integral Particle Flux (Uni-Directional)", "1/(m2 s sr)", "IPFUD"},
					{1, "Integral Particle Flux (Omni-Directional)", "1/(m2 s)", "IPFOD"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 5, Name: "Waves",
				Parameters: []rawParameter{
					{0, "Amplitude", "m", "SWXAMP"},
					{1, "Frequency", "Hz", "SWXFREQ"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 6, Name: "Solar Electromagnetic Emissions",
				Parameters: []rawParameter{
					{0, "Integrated Solar Irradiance", "W/m2", "SOLIRR0"},
					{1, "Solar X-Ray Flux (Long Wavelength)", "W/m2", "XLONG"},
					{2, "Solar X-Ray Flux (Short Wavelength)", "W/m2", "XSHRT"},
					{3, "Solar EUV Irradiance", "W/m2", "EUVIRR"},
					{4, "Solar Spectral Irradiance", "W/(m2 nm)", "SPECIRR"},
					{5, "F10.7", "W/(m2 Hz)", "F107"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 7, Name: "Terrestrial Electromagnetic Emissions",
				Parameters: []rawParameter{
					{0, "Limb Intensity", "Rayleighs", "LMBINT"},
					{1, "Disk Intensity", "Rayleighs", "DSKINT"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 8, Name: "Imagery",
				Parameters: []rawParameter{
					{0, "X-Ray Radiance", "W/(m2 sr)", "XRAYRAD"},
					{1, "EUV Radiance", "W/(m2 sr)", "EUVRAD"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 9, Name: "Ion-Neutral Coupling",
				Parameters: []rawParameter{
					{0, "Pedersen Conductivity", "S/m", "PCONDUC"},
					{1, "Hall Conductivity", "S/m", "HCONDUC"},
					{2, "Parallel Conductivity", "S/m", "PLCONDUC"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 10, Name: "Space Weather Indices",
				Parameters: []rawParameter{
					{0, "Dst Index", "nT", "DSTIDX"},
					{1, "Kp Index", "Numeric", "KPIDX"},
					{2, "Ap Index", "Numeric", "APIDX"},
					{3, "Ae Index", "nT", "AEIDX"},
					{4, "Sunspot Number", "Numeric", "SUNSPOT"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 11, Name: "Solar Radio Emissions",
				Parameters: []rawParameter{
					{0, "Circular Polarization Radio Flux", "W/(m2 Hz)", "CPRADFLX"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 13, Name: "Auroral Imagery",
				Parameters: []rawParameter{
					{0, "Spectrographic Imagery", "Numeric", "SPECIMG"},
					{255, "Missing", "", "MISS"},
				},
			},
		},
	},
	{
		ID: 10, Name: "Oceanographic Products",
		Categories: []rawCategory{
			{
				ID: 0, Name: "Waves",
				Parameters: []rawParameter{
					{0, "Wave Spectra (1)", "-", "WVSP1"},
					{1, "Wave Spectra (2)", "-", "WVSP2"},
					{2, "Wave Spectra (3)", "-", "WVSP3"},
					{3, "Significant Height Of Combined Wind Waves And Swell", "m", "HTSGW"},
					{4, "Direction Of Wind Waves", "deg true", "WVDIR"},
					{5, "Significant Height Of Wind Waves", "m", "WVHGT"},
					{6, "Mean Period Of Wind Waves", "s", "WVPER"},
					{7, "Direction Of Swell Waves", "deg true", "SWDIR"},
					{8, "Significant Height Of Swell Waves", "m", "SWELL"},
					{9, "Mean Period Of Swell Waves", "s", "SWPER"},
					{10, "Primary Wave Direction", "deg true", "DIRPW"},
					{11, "Primary Wave Mean Period", "s", "PERPW"},
					{12, "Secondary Wave Direction", "deg true", "DIRSW"},
					{13, "Secondary Wave Mean Period", "s", "PERSW"},
					{14, "Direction Of Combined Wind Waves And Swell", "deg true", "WWSDIR"},
					{15, "Mean Period Of Combined Wind Waves And Swell", "s", "MWSPER"},
					{16, "Coefficient Of Drag With Waves", "Numeric", "CDWW"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 1, Name: "Currents",
				Parameters: []rawParameter{
					{0, "Current Direction", "deg true", "DIRC"},
					{1, "Current Speed", "m/s", "SPC"},
					{2, "U-Component Of Current", "m/s", "UOGRD"},
					{3, "V-Component Of Current", "m/s", "VOGRD"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 2, Name: "Ice",
				Parameters: []rawParameter{
					{0, "Ice Cover", "Proportion", "ICEC"},
					{1, "Ice Thickness", "m", "ICETK"},
					{2, "Direction Of Ice Drift", "deg true", "DICED"},
					{3, "Speed Of Ice Drift", "m/s", "SICED"},
					{4, "U-Component Of Ice Drift", "m/s", "UICE"},
					{5, "V-Component Of Ice Drift", "m/s", "VICE"},
					{6, "Ice Growth Rate", "m/s", "ICEG"},
					{7, "Ice Divergence", "1/s", "ICED"},
					{8, "Ice Temperature", "K", "ICETMP"},
					{9, "Module Of Ice Internal Pressure", "Pa m", "ICEPRS"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 3, Name: "Surface Properties",
				Parameters: []rawParameter{
					{0, "Water Temperature", "K", "WTMP"},
					{1, "Deviation Of Sea Level From Mean", "m", "DSLM"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 4, Name: "Sub-Surface Properties",
				Parameters: []rawParameter{
					{0, "Water Temperature", "K", "WTMPSS"},
					{1, "Moisture Content", "kg/kg", "SALTY"},
					{2, "U-Component Of Current", "m/s", "UOGRD2"},
					{3, "V-Component Of Current", "m/s", "VOGRD2"},
					{4, "Salinity", "kg/kg", "WTEMP"},
					{5, "Barotropic U Velocity", "m/s", "BARUVEL"},
					{6, "Barotropic V Velocity", "m/s", "BARVVEL"},
					{7, "Interface Depths", "m", "INTFD"},
					{8, "Ocean Mixed Layer Thickness", "m", "OMLU"},
					{255, "Missing", "", "MISS"},
				},
			},
			{
				ID: 191, Name: "Miscellaneous",
				Parameters: []rawParameter{
					{0, "Model Depth", "m", "DEPTH"},
					{255, "Missing", "", "MISS"},
				},
			},
		},
	},
}
